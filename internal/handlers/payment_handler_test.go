package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/services"
)

type stubPaymentService struct {
	result     *models.Payment
	err        error
	listResult []models.Payment
	listErr    error
	lastClient string
	lastPlan   string
	lastDate   time.Time
}

func (s *stubPaymentService) Create(_ context.Context, clientName, planName string, paidOn time.Time) (*models.Payment, error) {
	s.lastClient = clientName
	s.lastPlan = planName
	s.lastDate = paidOn
	return s.result, s.err
}

func (s *stubPaymentService) ListForClient(_ context.Context, clientName string) ([]models.Payment, error) {
	s.lastClient = clientName
	return s.listResult, s.listErr
}

func newPaymentApp(service *stubPaymentService) *fiber.App {
	app := fiber.New()
	handler := NewPaymentHandler(service)
	app.Post("/api/v1/payments", handler.Create)
	app.Get("/api/v1/clients/:name/payments", handler.ListByClient)
	return app
}

func TestCreatePaymentForwardsParsedFields(t *testing.T) {
	service := &stubPaymentService{
		result: &models.Payment{ID: 55, ClientID: 9, Amount: 150, PlanID: 3},
	}
	app := newPaymentApp(service)

	resp, body := performJSON(t, app, http.MethodPost, "/api/v1/payments",
		`{"client":"Ana Souza","plan":"Premium","date":"2024-06-10"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastClient != "Ana Souza" || service.lastPlan != "Premium" {
		t.Errorf("expected names forwarded, got %q/%q", service.lastClient, service.lastPlan)
	}
	if !service.lastDate.Equal(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected parsed date, got %s", service.lastDate)
	}
	if body["status"] != "success" {
		t.Errorf("expected success status, got %v", body["status"])
	}
}

func TestCreatePaymentRejectsBadDate(t *testing.T) {
	app := newPaymentApp(&stubPaymentService{})

	resp, _ := performJSON(t, app, http.MethodPost, "/api/v1/payments",
		`{"client":"Ana Souza","plan":"Premium","date":"10/06/2024"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", resp.StatusCode)
	}
}

func TestListPaymentsByClient(t *testing.T) {
	service := &stubPaymentService{
		listResult: []models.Payment{
			{ID: 55, ClientID: 9, Amount: 150, PlanID: 3},
			{ID: 56, ClientID: 9, Amount: 150, PlanID: 3},
		},
	}
	app := newPaymentApp(service)

	resp, body := performJSON(t, app, http.MethodGet, "/api/v1/clients/Ana/payments", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastClient != "Ana" {
		t.Errorf("expected client name from path, got %q", service.lastClient)
	}
	payments, ok := body["payments"].([]any)
	if !ok || len(payments) != 2 {
		t.Errorf("expected 2 payments in body, got %v", body["payments"])
	}
}

func TestListPaymentsUnknownClient(t *testing.T) {
	service := &stubPaymentService{
		listErr: &services.UnresolvedError{Entity: "client", Name: "Nobody"},
	}
	app := newPaymentApp(service)

	resp, _ := performJSON(t, app, http.MethodGet, "/api/v1/clients/Nobody/payments", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCreatePaymentSameDayConflicts(t *testing.T) {
	service := &stubPaymentService{
		err: &services.DuplicateError{Entity: "payment", Field: "date", Value: "2024-06-10"},
	}
	app := newPaymentApp(service)

	resp, _ := performJSON(t, app, http.MethodPost, "/api/v1/payments",
		`{"client":"Ana Souza","plan":"Premium","date":"2024-06-10"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}
