package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/scwellservice/fieldservice-api/internal/application/dto"
	"github.com/scwellservice/fieldservice-api/internal/application/usecase"
	"github.com/scwellservice/fieldservice-api/internal/domain/repository"
)

// JobHandler serves the scheduling board endpoints.
type JobHandler struct {
	uc *usecase.JobUseCase
}

func NewJobHandler(uc *usecase.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// Create POST /api/jobs
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	job, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// List GET /api/jobs?status=&date=&customer_id=
func (h *JobHandler) List(c *fiber.Ctx) error {
	customerID, _ := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	list, err := h.uc.List(repository.JobFilter{
		Status:     c.Query("status"),
		Date:       c.Query("date"),
		CustomerID: customerID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/jobs/:id
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	job, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(job)
}

// Update PUT /api/jobs/:id
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	job, err := h.uc.Update(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(job)
}

// Delete DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
