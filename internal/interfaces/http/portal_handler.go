package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
)

// PortalHandler serves the customer-facing read-only portal. The token in
// the path is the whole credential.
type PortalHandler struct {
	uc *usecase.PortalUseCase
}

func NewPortalHandler(uc *usecase.PortalUseCase) *PortalHandler {
	return &PortalHandler{uc: uc}
}

// ByToken GET /api/portal/:token
func (h *PortalHandler) ByToken(c *fiber.Ctx) error {
	view, err := h.uc.ByToken(c.Params("token"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(view)
}
