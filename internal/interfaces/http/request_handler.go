package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
)

// RequestHandler serves the service request endpoints.
type RequestHandler struct {
	uc *usecase.RequestUseCase
}

func NewRequestHandler(uc *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Create POST /api/requests
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	request, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// List GET /api/requests?status=
func (h *RequestHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("status"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/requests/:id
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	request, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(request)
}

// Update PUT /api/requests/:id
func (h *RequestHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	request, err := h.uc.Update(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(request)
}

// Delete DELETE /api/requests/:id
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
