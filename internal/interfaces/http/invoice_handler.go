package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/billing"
	"github.com/scwellservice/fieldservice-api/internal/application/dto"
)

// InvoiceHandler serves the invoice lifecycle endpoints, the PDF download
// included.
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
}

func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// List GET /api/invoices?status=&customer_id=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	customerID, _ := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	list, err := h.uc.List(c.Query("status"), customerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	inv, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(inv)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(inv)
}

// Send POST /api/invoices/:id/send
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	inv, err := h.uc.Send(c.UserContext(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(inv)
}

// PDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	data, err := h.pdf.Render(c.UserContext(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="invoice-%d.pdf"`, id))
	return c.Send(data)
}
