package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type planLister interface {
	List(ctx context.Context) ([]models.Plan, error)
}

type instructorLister interface {
	List(ctx context.Context) ([]models.Instructor, error)
}

// CatalogHandler serves the reference lists forms are populated from: the
// available plans and instructors. Both are import-managed, so there are no
// mutating endpoints here.
type CatalogHandler struct {
	plans       planLister
	instructors instructorLister
}

func NewCatalogHandler(plans planLister, instructors instructorLister) *CatalogHandler {
	return &CatalogHandler{
		plans:       plans,
		instructors: instructors,
	}
}

func (h *CatalogHandler) Plans(c *fiber.Ctx) error {
	plans, err := h.plans.List(c.Context())
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to load plans")
	}
	return c.JSON(fiber.Map{"status": "success", "plans": plans})
}

func (h *CatalogHandler) Instructors(c *fiber.Ctx) error {
	instructors, err := h.instructors.List(c.Context())
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to load instructors")
	}
	return c.JSON(fiber.Map{"status": "success", "instructors": instructors})
}
