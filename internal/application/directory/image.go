package directory

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hsati/directory-backend/internal/domain/shared"
)

// Bucket names, one per resource family. Each bucket is publicly readable
// and holds only that family's images.
const (
	BucketMembers    = "executive-members-committee"
	BucketAllMembers = "members-images"
	BucketEvents     = "events-images"
	BucketCirculars  = "circular-images"
	BucketCleanGreen = "clean-green-images"
)

// ObjectStore is the object-storage surface the ingestor needs
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
	PublicURL(bucket, key string) string
}

var dataURLPrefix = regexp.MustCompile(`^data:image/(png|jpg|jpeg);base64,`)

// ImageIngestor decodes inline base64 image payloads and uploads them to
// object storage, returning the public URL to store on the row. Bytes only
// exist in memory for the duration of the call.
type ImageIngestor struct {
	store ObjectStore
}

// NewImageIngestor creates a new ImageIngestor
func NewImageIngestor(store ObjectStore) *ImageIngestor {
	return &ImageIngestor{store: store}
}

// Ingest uploads one image payload to the given bucket. When detectKind is
// true the extension and content type follow the data-URL prefix (png keeps
// .png, jpg/jpeg and unrecognized payloads become .jpg); when false the
// image is always stored as .jpg regardless of prefix.
func (g *ImageIngestor) Ingest(ctx context.Context, bucket, payload string, detectKind bool) (string, error) {
	ext, contentType := ".jpg", "image/jpeg"
	if detectKind {
		if m := dataURLPrefix.FindStringSubmatch(payload); m != nil && m[1] == "png" {
			ext, contentType = ".png", "image/png"
		}
	}

	raw := dataURLPrefix.ReplaceAllString(payload, "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", shared.NewDependencyError("image upload failed", err)
	}

	key := objectName(ext)
	if err := g.store.Upload(ctx, bucket, key, data, contentType); err != nil {
		return "", shared.NewDependencyError("image upload failed", err)
	}

	return g.store.PublicURL(bucket, key), nil
}

// objectName builds a collision-resistant object name from the current time
// and a short random suffix.
func objectName(ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), suffix, ext)
}
