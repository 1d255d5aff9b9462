package directory

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/shared"
	"github.com/hsati/directory-backend/internal/infrastructure/storage"
)

func TestAllMemberServiceCreate(t *testing.T) {
	t.Run("an empty payload still creates an active row", func(t *testing.T) {
		repo := new(MockAllMemberRepository)
		svc := NewAllMemberService(repo, NewImageIngestor(storage.NewStubObjectStorage()))

		repo.On("Create", mock.Anything, mock.MatchedBy(func(m *directory.AllMember) bool {
			return m.Active && m.Company == "" && m.FileURL == ""
		})).Return(nil)

		_, err := svc.Create(context.Background(), AllMemberFields{})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("uploaded files are always stored as jpg", func(t *testing.T) {
		repo := new(MockAllMemberRepository)
		stub := storage.NewStubObjectStorage()
		svc := NewAllMemberService(repo, NewImageIngestor(stub))

		repo.On("Create", mock.Anything, mock.MatchedBy(func(m *directory.AllMember) bool {
			return strings.HasSuffix(m.FileURL, ".jpg") && strings.Contains(m.FileURL, BucketAllMembers)
		})).Return(nil)

		req := AllMemberFields{
			Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("logo")),
		}
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestAllMemberServiceUpdate(t *testing.T) {
	t.Run("file column is rewritten even when nothing is sent", func(t *testing.T) {
		repo := new(MockAllMemberRepository)
		svc := NewAllMemberService(repo, NewImageIngestor(storage.NewStubObjectStorage()))

		repo.On("UpdateFields", mock.Anything, int64(9), mock.MatchedBy(func(f map[string]any) bool {
			return f["file_url"] == "" && f["company"] == "Acme Mills"
		})).Return(&directory.AllMember{ID: 9, Company: "Acme Mills"}, nil)

		company := "Acme Mills"
		member, err := svc.Update(context.Background(), 9, AllMemberFields{Company: &company})
		require.NoError(t, err)
		assert.Equal(t, "Acme Mills", member.Company)
		repo.AssertExpectations(t)
	})

	t.Run("only submitted columns reach the update", func(t *testing.T) {
		repo := new(MockAllMemberRepository)
		svc := NewAllMemberService(repo, NewImageIngestor(storage.NewStubObjectStorage()))

		repo.On("UpdateFields", mock.Anything, int64(9), mock.MatchedBy(func(f map[string]any) bool {
			_, hasCompany := f["company"]
			return f["email"] == "info@acme.example" && !hasCompany
		})).Return(&directory.AllMember{ID: 9}, nil)

		email := "info@acme.example"
		_, err := svc.Update(context.Background(), 9, AllMemberFields{Email: &email})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("upload failure surfaces as a dependency error", func(t *testing.T) {
		repo := new(MockAllMemberRepository)
		stub := storage.NewStubObjectStorage()
		stub.FailUploads = true
		svc := NewAllMemberService(repo, NewImageIngestor(stub))

		req := AllMemberFields{
			Image: base64.StdEncoding.EncodeToString([]byte("logo")),
		}
		_, err := svc.Update(context.Background(), 9, req)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeDependency, derr.Code)
		repo.AssertNotCalled(t, "UpdateFields")
	})
}

func TestCleanGreenServiceCreate(t *testing.T) {
	t.Run("requires a title", func(t *testing.T) {
		repo := new(MockCleanGreenRepository)
		svc := NewCleanGreenService(repo, NewImageIngestor(storage.NewStubObjectStorage()))

		_, err := svc.Create(context.Background(), CreateCleanGreenRequest{})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeValidation, derr.Code)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestCleanGreenServiceUpdate(t *testing.T) {
	t.Run("image column is rewritten even when nothing is sent", func(t *testing.T) {
		repo := new(MockCleanGreenRepository)
		svc := NewCleanGreenService(repo, NewImageIngestor(storage.NewStubObjectStorage()))

		repo.On("UpdateFields", mock.Anything, int64(6), mock.MatchedBy(func(f map[string]any) bool {
			return f["cleanimage"] == "" && f["title"] == "Tree drive"
		})).Return(&directory.CleanGreenCard{ID: 6, Title: "Tree drive"}, nil)

		title := "Tree drive"
		card, err := svc.Update(context.Background(), 6, UpdateCleanGreenRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Tree drive", card.Title)
		repo.AssertExpectations(t)
	})
}
