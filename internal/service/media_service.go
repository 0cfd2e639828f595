package service

import (
	"context"

	"journal/internal/authz"
	"journal/internal/middleware"
	"journal/internal/models"
	"journal/internal/observability"
	"journal/internal/repository"
	"journal/internal/storage"
)

// MaxUploadBytes caps a single media upload.
const MaxUploadBytes = 10 << 20 // 10 MiB

type MediaService struct {
	mediaRepo repository.MediaRepository
	store     storage.ObjectStore
	roleOf    func(ctx context.Context, userID uint) (models.UserRole, error)
}

type UploadMediaInput struct {
	UserID      uint
	Filename    string
	ContentType string
	Content     []byte
	AltText     string
	Caption     string
}

type ListMediaInput struct {
	MimePrefix string
	Page       int
	Limit      int
}

func NewMediaService(
	mediaRepo repository.MediaRepository,
	store storage.ObjectStore,
	roleOf func(ctx context.Context, userID uint) (models.UserRole, error),
) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		store:     store,
		roleOf:    roleOf,
	}
}

// Upload validates the file, stores the original plus a webp thumbnail, and
// records the row. The sniffed content type wins over the client-declared
// one.
func (s *MediaService) Upload(ctx context.Context, in UploadMediaInput) (*models.Media, error) {
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("Uploaded file is empty")
	}
	if len(in.Content) > MaxUploadBytes {
		observability.RecordUpload("rejected", 0)
		return nil, models.NewValidationError("Uploaded file exceeds the 10 MB limit")
	}

	mimeType := storage.SniffMimeType(in.Content)
	if !storage.AllowedMimeType(mimeType) {
		observability.RecordUpload("rejected", 0)
		return nil, models.NewValidationError("Unsupported file type: " + mimeType)
	}

	key := storage.GenerateKey(in.Filename)
	url, err := s.store.Upload(ctx, key, in.Content, mimeType)
	if err != nil {
		observability.RecordUpload("failure", 0)
		return nil, err
	}

	width, height := storage.Dimensions(in.Content)

	// SVG has no bitmap to thumbnail; everything else gets one. A failed
	// thumbnail does not fail the upload.
	var thumbnailURL string
	if mimeType != "image/svg+xml" {
		if thumb, err := storage.Thumbnail(in.Content); err == nil {
			if tURL, err := s.store.Upload(ctx, storage.ThumbnailKey(key), thumb, "image/webp"); err == nil {
				thumbnailURL = tURL
			} else {
				middleware.Logger.WarnContext(ctx, "thumbnail upload failed", "key", key, "error", err)
			}
		} else {
			middleware.Logger.WarnContext(ctx, "thumbnail generation failed", "key", key, "error", err)
		}
	}

	media := &models.Media{
		Filename:         key,
		OriginalFilename: in.Filename,
		URL:              url,
		ThumbnailURL:     thumbnailURL,
		MimeType:         mimeType,
		Size:             int64(len(in.Content)),
		Width:            width,
		Height:           height,
		AltText:          in.AltText,
		Caption:          in.Caption,
		UploadedBy:       &in.UserID,
	}
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		// The object is already in the bucket with no row pointing at it.
		// Try to clean up; count what escapes.
		if delErr := s.store.DeleteByURL(ctx, url); delErr != nil {
			observability.StorageOrphanedObjects.Inc()
			middleware.Logger.ErrorContext(ctx, "orphaned object after failed media insert",
				"url", url, "error", delErr)
		}
		if thumbnailURL != "" {
			if delErr := s.store.DeleteByURL(ctx, thumbnailURL); delErr != nil {
				observability.StorageOrphanedObjects.Inc()
			}
		}
		observability.RecordUpload("failure", 0)
		return nil, err
	}

	observability.RecordUpload("success", media.Size)
	return media, nil
}

func (s *MediaService) List(ctx context.Context, in ListMediaInput) (*repository.MediaPage, error) {
	return s.mediaRepo.List(ctx, repository.MediaFilter{MimePrefix: in.MimePrefix},
		repository.PageRequest{Page: in.Page, Limit: in.Limit})
}

func (s *MediaService) Get(ctx context.Context, id uint) (*models.Media, error) {
	return s.mediaRepo.GetByID(ctx, id)
}

// Delete removes the stored objects first, then the row. A missing object is
// logged but does not block removing the row.
func (s *MediaService) Delete(ctx context.Context, userID, mediaID uint) error {
	media, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return err
	}

	role, err := s.roleOf(ctx, userID)
	if err != nil {
		return err
	}
	if !authz.CanDeleteMedia(media, userID, role) {
		return models.NewForbiddenError("You cannot delete this file")
	}

	if err := s.store.DeleteByURL(ctx, media.URL); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to delete object", "url", media.URL, "error", err)
	}
	if media.ThumbnailURL != "" {
		if err := s.store.DeleteByURL(ctx, media.ThumbnailURL); err != nil {
			middleware.Logger.WarnContext(ctx, "failed to delete thumbnail", "url", media.ThumbnailURL, "error", err)
		}
	}

	return s.mediaRepo.Delete(ctx, mediaID)
}

func (s *MediaService) Stats(ctx context.Context) (*repository.MediaStats, error) {
	return s.mediaRepo.Stats(ctx)
}
