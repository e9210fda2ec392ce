package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type reportStore interface {
	ClientsByPlan(ctx context.Context, planName string) ([]models.ClientPlanRow, error)
	WorkoutCountByInstructor(ctx context.Context, instructorName string) (int, error)
	ClientsByInstructor(ctx context.Context) ([]models.InstructorClientCount, error)
	PaymentSummaryPerClient(ctx context.Context) ([]models.ClientPaymentSummary, error)
	MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenueRow, error)
	TopPlan(ctx context.Context) (*models.PlanUsage, error)
	WorkoutDetails(ctx context.Context, clientName string) ([]models.WorkoutExerciseRow, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type ReportHandler struct {
	reports reportStore
}

func NewReportHandler(reports reportStore) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) ClientsByPlan(c *fiber.Ctx) error {
	planName := c.Query("plan")
	if planName == "" {
		return failure(c, fiber.StatusBadRequest, "Query parameter plan is required")
	}

	rows, err := h.reports.ClientsByPlan(c.Context(), planName)
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to load clients by plan")
	}
	return c.JSON(fiber.Map{"status": "success", "clients": rows})
}

func (h *ReportHandler) WorkoutCountByInstructor(c *fiber.Ctx) error {
	name := c.Params("name")
	count, err := h.reports.WorkoutCountByInstructor(c.Context(), name)
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to count workouts")
	}
	return c.JSON(fiber.Map{
		"status":     "success",
		"instructor": name,
		"workouts":   count,
	})
}

func (h *ReportHandler) ClientsByInstructor(c *fiber.Ctx) error {
	rows, err := h.reports.ClientsByInstructor(c.Context())
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to load clients by instructor")
	}
	return c.JSON(fiber.Map{"status": "success", "instructors": rows})
}

func (h *ReportHandler) PaymentSummary(c *fiber.Ctx) error {
	rows, err := h.reports.PaymentSummaryPerClient(c.Context())
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to load payment summary")
	}
	return c.JSON(fiber.Map{"status": "success", "summary": rows})
}

func (h *ReportHandler) MonthlyRevenue(c *fiber.Ctx) error {
	rows, err := h.reports.MonthlyRevenue(c.Context())
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to load monthly revenue")
	}
	return c.JSON(fiber.Map{"status": "success", "revenue": rows})
}

func (h *ReportHandler) WorkoutDetails(c *fiber.Ctx) error {
	rows, err := h.reports.WorkoutDetails(c.Context(), c.Query("client"))
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to load workout details")
	}
	return c.JSON(fiber.Map{"status": "success", "workouts": rows})
}

func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.reports.DashboardStats(c.Context())
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to load dashboard stats")
	}
	topPlan, err := h.reports.TopPlan(c.Context())
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to load top plan")
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"stats":    stats,
		"top_plan": topPlan,
	})
}
