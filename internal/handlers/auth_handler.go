package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/repository"
	"github.com/RaulSimioni/Sistema-Academia/pkg/utils"
)

type userStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthHandler struct {
	userRepo  userStore
	jwtSecret string
}

func NewAuthHandler(userRepo userStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return failure(c, fiber.StatusBadRequest, "Username must not be empty")
	}
	if len(req.Password) < 8 {
		return failure(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hashed,
	}
	if err := h.userRepo.CreateUser(c.Context(), user); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return failure(c, fiber.StatusConflict, "Username already exists")
		}
		return failure(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "User registered",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.userRepo.GetByUsername(c.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return failure(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return failure(c, fiber.StatusInternalServerError, "Failed to lookup user")
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return failure(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Username, h.jwtSecret)
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"token":  token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
