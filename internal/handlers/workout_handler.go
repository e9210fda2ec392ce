package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type workoutService interface {
	Create(ctx context.Context, clientName string, startDate time.Time) (*models.Workout, error)
	ListForClient(ctx context.Context, clientName string) ([]models.Workout, error)
	AssignExercise(ctx context.Context, workoutID int64, exerciseName string, sets, reps int) (*models.WorkoutExercise, error)
}

type WorkoutHandler struct {
	service workoutService
}

func NewWorkoutHandler(service workoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

type createWorkoutRequest struct {
	Client    string `json:"client"`
	StartDate string `json:"start_date"`
}

func (h *WorkoutHandler) Create(c *fiber.Ctx) error {
	var req createWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return failure(c, fiber.StatusBadRequest, "Start date must be in YYYY-MM-DD format")
	}

	workout, err := h.service.Create(c.Context(), req.Client, startDate)
	if err != nil {
		return serviceError(c, err)
	}

	return success(c,
		fmt.Sprintf("Workout registered from %s to %s",
			workout.StartDate.Format("2006-01-02"),
			workout.EndDate.Format("2006-01-02")),
		"workout", workout)
}

func (h *WorkoutHandler) ListByClient(c *fiber.Ctx) error {
	workouts, err := h.service.ListForClient(c.Context(), c.Params("name"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "workouts": workouts})
}

type assignExerciseRequest struct {
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
}

func (h *WorkoutHandler) AssignExercise(c *fiber.Ctx) error {
	workoutID, err := c.ParamsInt("id")
	if err != nil || workoutID < 1 {
		return failure(c, fiber.StatusBadRequest, "Invalid workout id")
	}

	var req assignExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	assignment, err := h.service.AssignExercise(c.Context(), int64(workoutID), req.Exercise, req.Sets, req.Reps)
	if err != nil {
		return serviceError(c, err)
	}

	return success(c,
		fmt.Sprintf("Exercise %s assigned (%dx%d)", req.Exercise, assignment.Sets, assignment.Reps),
		"assignment", assignment)
}
