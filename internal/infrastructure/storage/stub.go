// Package storage provides object storage implementations for image uploads.
package storage

import (
	"context"
	"errors"
	"sync"
)

// StubObjectStorage is an in-memory object store used in development and
// tests. It records every upload so tests can assert what was written.
type StubObjectStorage struct {
	// BaseURL is the base URL for generated public URLs
	BaseURL string
	// FailUploads makes every Upload call return an error
	FailUploads bool

	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

// Upload records an object in memory
func (s *StubObjectStorage) Upload(_ context.Context, bucket, key string, data []byte, contentType string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	if s.FailUploads {
		return errors.New("upload rejected")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = data
	s.types[bucket+"/"+key] = contentType
	return nil
}

// PublicURL returns the public URL of an object
func (s *StubObjectStorage) PublicURL(bucket, key string) string {
	return s.BaseURL + "/" + bucket + "/" + key
}

// Object returns the stored bytes and content type for a bucket/key pair
func (s *StubObjectStorage) Object(bucket, key string) ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[bucket+"/"+key]
	return data, s.types[bucket+"/"+key], ok
}

// Count returns how many objects were uploaded
func (s *StubObjectStorage) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
