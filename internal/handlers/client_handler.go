package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/services"
)

type clientService interface {
	Create(ctx context.Context, input services.CreateClientInput) (*models.Client, error)
	List(ctx context.Context, page, limit int) ([]models.Client, int, error)
}

type ClientHandler struct {
	service clientService
}

func NewClientHandler(service clientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type createClientRequest struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Sex        string `json:"sex"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Plan       string `json:"plan"`
	Instructor string `json:"instructor"`
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req createClientRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	client, err := h.service.Create(c.Context(), services.CreateClientInput{
		Name:           req.Name,
		Age:            req.Age,
		Sex:            req.Sex,
		Email:          req.Email,
		Phone:          req.Phone,
		PlanName:       req.Plan,
		InstructorName: req.Instructor,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return success(c, fmt.Sprintf("Client %s registered", client.Name), "client", client)
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultPageLimit)
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	clients, total, err := h.service.List(c.Context(), page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"clients":    clients,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}
