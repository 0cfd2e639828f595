package server

import (
	"errors"
	"io"

	"journal/internal/models"
	"journal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// storageAvailable rejects media endpoints when object storage is not
// configured, instead of panicking deeper in the stack.
func (s *Server) storageAvailable(c *fiber.Ctx) bool {
	if s.mediaService == nil {
		_ = models.RespondWithError(c, fiber.StatusServiceUnavailable,
			errors.New("Object storage is not configured"))
		return false
	}
	return true
}

// UploadMedia handles POST /api/admin/media
// @Summary Upload a media file
// @Description Accepts a multipart form with an "image" file plus optional alt_text and caption fields. A webp thumbnail is generated for raster images.
// @Tags admin-media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "File to upload (max 10 MB)"
// @Param alt_text formData string false "Alt text"
// @Param caption formData string false "Caption"
// @Success 201 {object} models.Media
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/media [post]
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	if !s.storageAvailable(c) {
		return nil
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("An \"image\" file field is required"))
	}
	if fileHeader.Size > service.MaxUploadBytes {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Uploaded file exceeds the 10 MB limit"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	media, err := s.mediaService.Upload(c.Context(), service.UploadMediaInput{
		UserID:      currentUserID(c),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
		AltText:     c.FormValue("alt_text"),
		Caption:     c.FormValue("caption"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

// GetMedia handles GET /api/admin/media
// @Summary List media
// @Tags admin-media
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param type query string false "MIME type prefix filter, e.g. image/"
// @Success 200 {object} repository.MediaPage
// @Router /admin/media [get]
func (s *Server) GetMedia(c *fiber.Ctx) error {
	if !s.storageAvailable(c) {
		return nil
	}
	req := parsePageRequest(c)
	page, err := s.mediaService.List(c.Context(), service.ListMediaInput{
		MimePrefix: c.Query("type"),
		Page:       req.Page,
		Limit:      req.Limit,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetMediaStats handles GET /api/admin/media/stats
// @Summary Media library statistics
// @Tags admin-media
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repository.MediaStats
// @Router /admin/media/stats [get]
func (s *Server) GetMediaStats(c *fiber.Ctx) error {
	if !s.storageAvailable(c) {
		return nil
	}
	stats, err := s.mediaService.Stats(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}

// DeleteMedia handles DELETE /api/admin/media/:id
// @Summary Delete a media file
// @Description Removes the stored object, its thumbnail, and the record. Authors may only delete their own uploads.
// @Tags admin-media
// @Produce json
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/media/{id} [delete]
func (s *Server) DeleteMedia(c *fiber.Ctx) error {
	if !s.storageAvailable(c) {
		return nil
	}
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.mediaService.Delete(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Media deleted"})
}
