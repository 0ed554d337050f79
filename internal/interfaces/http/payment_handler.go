package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/billing"
	"github.com/scwellservice/fieldservice-api/internal/application/dto"
)

// PaymentHandler serves the payment ledger endpoints.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create POST /api/payments
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	payment, err := h.uc.Apply(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// List GET /api/payments?invoice_id=
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	invoiceID, err := strconv.ParseInt(c.Query("invoice_id"), 10, 64)
	if err != nil || invoiceID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "invoice_id query parameter is required",
		})
	}
	list, err := h.uc.ListByInvoice(invoiceID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// ListByInvoice GET /api/invoices/:id/payments
func (h *PaymentHandler) ListByInvoice(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	list, err := h.uc.ListByInvoice(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}
