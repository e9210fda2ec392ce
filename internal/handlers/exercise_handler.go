package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type exerciseService interface {
	Create(ctx context.Context, name, muscleGroup string) (*models.Exercise, error)
}

type ExerciseHandler struct {
	service exerciseService
}

func NewExerciseHandler(service exerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

type createExerciseRequest struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
}

func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	var req createExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	exercise, err := h.service.Create(c.Context(), req.Name, req.MuscleGroup)
	if err != nil {
		return serviceError(c, err)
	}

	return success(c, fmt.Sprintf("Exercise %s registered", exercise.Name), "exercise", exercise)
}
