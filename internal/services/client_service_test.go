package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/repository"
)

type stubClientStore struct {
	byName     *models.Client
	byNameErr  error
	byEmail    *models.Client
	byEmailErr error
	createErr  error
	created    *models.Client
	listResult []models.Client
	listErr    error
	total      int
}

func (s *stubClientStore) Create(_ context.Context, client *models.Client) error {
	if s.createErr != nil {
		return s.createErr
	}
	client.ID = 101
	s.created = client
	return nil
}

func (s *stubClientStore) GetByName(_ context.Context, _ string) (*models.Client, error) {
	return s.byName, s.byNameErr
}

func (s *stubClientStore) GetByEmail(_ context.Context, _ string) (*models.Client, error) {
	return s.byEmail, s.byEmailErr
}

func (s *stubClientStore) List(_ context.Context, _, _ int) ([]models.Client, error) {
	return s.listResult, s.listErr
}

func (s *stubClientStore) Count(_ context.Context) (int, error) {
	return s.total, nil
}

type stubPlanReader struct {
	plan *models.Plan
	err  error
}

func (s *stubPlanReader) GetByName(_ context.Context, _ string) (*models.Plan, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

func (s *stubPlanReader) GetByID(_ context.Context, _ int64) (*models.Plan, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

type stubInstructorReader struct {
	instructor *models.Instructor
	err        error
}

func (s *stubInstructorReader) GetByName(_ context.Context, _ string) (*models.Instructor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.instructor, nil
}

func validClientInput() CreateClientInput {
	return CreateClientInput{
		Name:           "Ana Souza",
		Age:            28,
		Sex:            "F",
		Email:          "ana@example.com",
		Phone:          "11999990000",
		PlanName:       "Premium",
		InstructorName: "Carla",
	}
}

func newClientService(clients *stubClientStore) *ClientService {
	return NewClientService(
		clients,
		&stubPlanReader{plan: &models.Plan{ID: 3, Name: "Premium", MonthlyPrice: 150, DurationMonths: 6}},
		&stubInstructorReader{instructor: &models.Instructor{ID: 5, Name: "Carla"}},
	)
}

func TestCreateClientInsertsResolvedReferences(t *testing.T) {
	clients := &stubClientStore{byNameErr: pgx.ErrNoRows, byEmailErr: pgx.ErrNoRows}
	service := newClientService(clients)

	client, err := service.Create(context.Background(), validClientInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if client.ID != 101 {
		t.Errorf("expected assigned id 101, got %d", client.ID)
	}
	if client.PlanID != 3 || client.InstructorID != 5 {
		t.Errorf("expected plan 3 and instructor 5, got %d/%d", client.PlanID, client.InstructorID)
	}
	if client.WorkoutID != nil {
		t.Error("expected no workout to be attached on client creation")
	}
}

func TestCreateClientRejectsDuplicateName(t *testing.T) {
	clients := &stubClientStore{
		byName:     &models.Client{ID: 1, Name: "Ana Souza"},
		byEmailErr: pgx.ErrNoRows,
	}
	service := newClientService(clients)

	_, err := service.Create(context.Background(), validClientInput())
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if dup.Field != "name" {
		t.Errorf("expected name collision, got field %q", dup.Field)
	}
}

func TestCreateClientRejectsDuplicateEmail(t *testing.T) {
	clients := &stubClientStore{
		byNameErr: pgx.ErrNoRows,
		byEmail:   &models.Client{ID: 1, Email: "ana@example.com"},
	}
	service := newClientService(clients)

	_, err := service.Create(context.Background(), validClientInput())
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if dup.Field != "email" {
		t.Errorf("expected email collision, got field %q", dup.Field)
	}
}

func TestCreateClientUnresolvedPlanWritesNothing(t *testing.T) {
	clients := &stubClientStore{byNameErr: pgx.ErrNoRows, byEmailErr: pgx.ErrNoRows}
	service := NewClientService(
		clients,
		&stubPlanReader{err: pgx.ErrNoRows},
		&stubInstructorReader{instructor: &models.Instructor{ID: 5, Name: "Carla"}},
	)

	_, err := service.Create(context.Background(), validClientInput())
	var unresolved *UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedError, got %v", err)
	}
	if unresolved.Entity != "plan" {
		t.Errorf("expected plan to be unresolved, got %q", unresolved.Entity)
	}
	if clients.created != nil {
		t.Error("expected no client row to be written")
	}
}

func TestCreateClientUnresolvedInstructor(t *testing.T) {
	clients := &stubClientStore{byNameErr: pgx.ErrNoRows, byEmailErr: pgx.ErrNoRows}
	service := NewClientService(
		clients,
		&stubPlanReader{plan: &models.Plan{ID: 3, Name: "Premium"}},
		&stubInstructorReader{err: pgx.ErrNoRows},
	)

	_, err := service.Create(context.Background(), validClientInput())
	var unresolved *UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedError, got %v", err)
	}
	if unresolved.Entity != "instructor" {
		t.Errorf("expected instructor to be unresolved, got %q", unresolved.Entity)
	}
}

func TestCreateClientValidation(t *testing.T) {
	service := newClientService(&stubClientStore{byNameErr: pgx.ErrNoRows, byEmailErr: pgx.ErrNoRows})

	cases := []struct {
		name   string
		mutate func(*CreateClientInput)
		field  string
	}{
		{"empty name", func(in *CreateClientInput) { in.Name = "  " }, "name"},
		{"empty email", func(in *CreateClientInput) { in.Email = "" }, "email"},
		{"non-positive age", func(in *CreateClientInput) { in.Age = 0 }, "age"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validClientInput()
			tc.mutate(&input)
			_, err := service.Create(context.Background(), input)
			var invalid *ValidationError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if invalid.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, invalid.Field)
			}
		})
	}
}

func TestCreateClientMapsUniqueViolationToDuplicate(t *testing.T) {
	clients := &stubClientStore{
		byNameErr:  pgx.ErrNoRows,
		byEmailErr: pgx.ErrNoRows,
		createErr:  repository.ErrUniqueViolation,
	}
	service := newClientService(clients)

	_, err := service.Create(context.Background(), validClientInput())
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError from constraint conflict, got %v", err)
	}
}

func TestCreateClientWrapsStoreFailures(t *testing.T) {
	clients := &stubClientStore{byNameErr: errors.New("connection refused")}
	service := newClientService(clients)

	_, err := service.Create(context.Background(), validClientInput())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
