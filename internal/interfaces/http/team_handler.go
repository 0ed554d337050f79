package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
)

// TeamHandler serves the team roster endpoints.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// Create POST /api/team
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	member, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// List GET /api/team
func (h *TeamHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/team/:id
func (h *TeamHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	member, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(member)
}

// Update PUT /api/team/:id
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateTeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	member, err := h.uc.Update(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(member)
}

// Delete DELETE /api/team/:id
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
