package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/repository"
	"github.com/RaulSimioni/Sistema-Academia/pkg/utils"
)

type stubUserStore struct {
	createErr error
	user      *models.User
	getErr    error
}

func (s *stubUserStore) CreateUser(_ context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = 1
	return nil
}

func (s *stubUserStore) GetByUsername(_ context.Context, _ string) (*models.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.user, nil
}

func newAuthApp(store *stubUserStore) *fiber.App {
	app := fiber.New()
	handler := NewAuthHandler(store, "testsecret")
	app.Post("/api/auth/register", handler.Register)
	app.Post("/api/auth/login", handler.Login)
	return app
}

func TestRegisterCreatesUser(t *testing.T) {
	app := newAuthApp(&stubUserStore{})

	resp, body := performJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"frontdesk","password":"longenough"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if body["status"] != "success" {
		t.Errorf("expected success, got %v", body["status"])
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app := newAuthApp(&stubUserStore{})

	resp, _ := performJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"frontdesk","password":"short"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	app := newAuthApp(&stubUserStore{createErr: repository.ErrUniqueViolation})

	resp, _ := performJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"frontdesk","password":"longenough"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestLoginReturnsTokenForValidCredentials(t *testing.T) {
	hash, err := utils.HashPassword("longenough")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	app := newAuthApp(&stubUserStore{user: &models.User{ID: 1, Username: "frontdesk", PasswordHash: hash}})

	resp, body := performJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"frontdesk","password":"longenough"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the response")
	}

	claims, err := utils.ValidateToken(token, "testsecret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "frontdesk" {
		t.Errorf("expected username claim frontdesk, got %q", claims.Username)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("longenough")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	app := newAuthApp(&stubUserStore{user: &models.User{ID: 1, Username: "frontdesk", PasswordHash: hash}})

	resp, _ := performJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"frontdesk","password":"wrongpass"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLoginUnknownUserUnauthorized(t *testing.T) {
	app := newAuthApp(&stubUserStore{getErr: pgx.ErrNoRows})

	resp, _ := performJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"ghost","password":"whatever"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
