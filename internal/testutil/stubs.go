// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"sync"
)

// ObjectStoreStub is an in-memory object store for tests. It records every
// uploaded object and supports scripted failures.
type ObjectStoreStub struct {
	mu      sync.Mutex
	objects map[string][]byte
	baseURL string

	// UploadErr and DeleteErr, when set, are returned by the next calls.
	UploadErr error
	DeleteErr error
}

// NewObjectStoreStub creates an empty in-memory object store.
func NewObjectStoreStub() *ObjectStoreStub {
	return &ObjectStoreStub{
		objects: make(map[string][]byte),
		baseURL: "https://cdn.test",
	}
}

// Upload stores content under key and returns a fake public URL.
func (s *ObjectStoreStub) Upload(_ context.Context, key string, content []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	s.objects[key] = content
	return s.baseURL + "/" + key, nil
}

// DeleteByURL removes the object a stub URL points at.
func (s *ObjectStoreStub) DeleteByURL(_ context.Context, fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	key := fileURL[len(s.baseURL)+1:]
	if _, ok := s.objects[key]; !ok {
		return fmt.Errorf("object %s not found", key)
	}
	delete(s.objects, key)
	return nil
}

// Has reports whether an object is currently stored under key.
func (s *ObjectStoreStub) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

// Count returns the number of stored objects.
func (s *ObjectStoreStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// TinyPNG returns an in-memory PNG byte slice with the requested dimensions.
func TinyPNG(t interface {
	Helper()
	Fatalf(string, ...any)
}, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
