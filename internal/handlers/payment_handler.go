package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type paymentService interface {
	Create(ctx context.Context, clientName, planName string, paidOn time.Time) (*models.Payment, error)
	ListForClient(ctx context.Context, clientName string) ([]models.Payment, error)
}

type PaymentHandler struct {
	service paymentService
}

func NewPaymentHandler(service paymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentRequest struct {
	Client string `json:"client"`
	Plan   string `json:"plan"`
	Date   string `json:"date"`
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req createPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	paidOn, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return failure(c, fiber.StatusBadRequest, "Date must be in YYYY-MM-DD format")
	}

	payment, err := h.service.Create(c.Context(), req.Client, req.Plan, paidOn)
	if err != nil {
		return serviceError(c, err)
	}

	return success(c,
		fmt.Sprintf("Payment of %.2f registered for %s", payment.Amount, req.Client),
		"payment", payment)
}

func (h *PaymentHandler) ListByClient(c *fiber.Ctx) error {
	payments, err := h.service.ListForClient(c.Context(), c.Params("name"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "payments": payments})
}
