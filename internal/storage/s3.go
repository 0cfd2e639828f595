// Package storage handles uploaded files: S3-compatible object storage,
// content-type validation, and thumbnail generation.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"journal/internal/config"
	"journal/internal/observability"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is the interface the media service uploads through.
type ObjectStore interface {
	// Upload writes content under key and returns the public URL.
	Upload(ctx context.Context, key string, content []byte, contentType string) (string, error)
	// DeleteByURL removes the object a previously returned URL points at.
	DeleteByURL(ctx context.Context, fileURL string) error
}

type s3Store struct {
	client    *minio.Client
	bucket    string
	publicURL string
	endpoint  string
	secure    bool
}

// NewS3Store connects to the configured S3-compatible endpoint.
func NewS3Store(cfg *config.Config) (ObjectStore, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.S3Endpoint, "https://"), "http://")
	secure := !strings.HasPrefix(cfg.S3Endpoint, "http://")

	lookup := minio.BucketLookupAuto
	if cfg.S3ForcePathStyle {
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		Secure:       secure,
		Region:       cfg.S3Region,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &s3Store{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
		endpoint:  endpoint,
		secure:    secure,
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	ctx, span := observability.GetTraceLayer().TraceStorageOperation(ctx, "upload", key)
	defer span.End()

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return s.objectURL(key), nil
}

func (s *s3Store) DeleteByURL(ctx context.Context, fileURL string) error {
	key, err := s.keyFromURL(fileURL)
	if err != nil {
		return err
	}

	ctx, span := observability.GetTraceLayer().TraceStorageOperation(ctx, "delete", key)
	defer span.End()

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *s3Store) objectURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	scheme := "https"
	if !s.secure {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}

// keyFromURL reverses objectURL. Only URLs this store produced are valid.
func (s *s3Store) keyFromURL(fileURL string) (string, error) {
	if s.publicURL != "" && strings.HasPrefix(fileURL, s.publicURL+"/") {
		return strings.TrimPrefix(fileURL, s.publicURL+"/"), nil
	}
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("invalid object URL %q: %w", fileURL, err)
	}
	p := strings.TrimPrefix(parsed.Path, "/")
	if rest, ok := strings.CutPrefix(p, s.bucket+"/"); ok {
		return rest, nil
	}
	return "", fmt.Errorf("object URL %q does not belong to bucket %s", fileURL, s.bucket)
}

const maxKeyBaseLen = 50

// GenerateKey builds a collision-resistant object key from an upload
// filename. The original base name is kept, sanitized, so keys stay readable
// in the bucket.
func GenerateKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))

	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ' || r == '.':
			b.WriteByte('-')
		}
	}
	sanitized := strings.Trim(b.String(), "-")
	if len(sanitized) > maxKeyBaseLen {
		sanitized = sanitized[:maxKeyBaseLen]
	}
	if sanitized == "" {
		sanitized = "upload"
	}

	rand := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("uploads/%d-%s-%s%s", time.Now().UnixMilli(), rand, sanitized, ext)
}

// ThumbnailKey derives the thumbnail object key from the original's key.
func ThumbnailKey(key string) string {
	ext := path.Ext(key)
	return strings.TrimSuffix(key, ext) + "-thumb.webp"
}
