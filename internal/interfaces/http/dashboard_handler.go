package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/analytics"
)

// DashboardHandler serves the office dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(summary)
}
