package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
)

// SettingsHandler serves the singleton business settings.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(settings)
}

// Update PUT /api/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	settings, err := h.uc.Update(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(settings)
}
