package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/billing"
	"github.com/scwellservice/fieldservice-api/internal/application/dto"
)

// QuoteHandler serves the quote lifecycle endpoints.
type QuoteHandler struct {
	uc *billing.QuoteUseCase
}

func NewQuoteHandler(uc *billing.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create POST /api/quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	quote, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// List GET /api/quotes?status=&customer_id=
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	customerID, _ := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	list, err := h.uc.List(c.Query("status"), customerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/quotes/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	quote, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(quote)
}

// Update PUT /api/quotes/:id
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	quote, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(quote)
}

// Convert POST /api/quotes/:id/convert
func (h *QuoteHandler) Convert(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.ConvertQuoteRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	jobID, err := h.uc.Convert(c.UserContext(), id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ConvertQuoteResponse{JobID: jobID})
}
