package server

import (
	"journal/internal/models"
	"journal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSettings handles GET /api/settings
// @Summary Get site settings
// @Description Public site copy: hero, about, values, newsletter, and social fields
// @Tags settings
// @Produce json
// @Success 200 {object} models.SiteSettings
// @Router /settings [get]
func (s *Server) GetSettings(c *fiber.Ctx) error {
	settings, err := s.settingsService.Get(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(settings)
}

// UpdateSettings handles PUT /api/admin/settings
// @Summary Update site settings
// @Description Partial update. Absent fields keep their current value; send an empty string to clear one.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UpdateSettingsInput true "Fields to change"
// @Success 200 {object} models.SiteSettings
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/settings [put]
func (s *Server) UpdateSettings(c *fiber.Ctx) error {
	var req service.UpdateSettingsInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.UserID = currentUserID(c)

	settings, err := s.settingsService.Update(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(settings)
}
