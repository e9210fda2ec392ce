package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/repository"
)

type clientStore interface {
	Create(ctx context.Context, client *models.Client) error
	GetByName(ctx context.Context, name string) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	List(ctx context.Context, limit, offset int) ([]models.Client, error)
	Count(ctx context.Context) (int, error)
}

type planReader interface {
	GetByName(ctx context.Context, name string) (*models.Plan, error)
	GetByID(ctx context.Context, id int64) (*models.Plan, error)
}

type instructorReader interface {
	GetByName(ctx context.Context, name string) (*models.Instructor, error)
}

type ClientService struct {
	clientRepo     clientStore
	planRepo       planReader
	instructorRepo instructorReader
}

func NewClientService(clientRepo clientStore, planRepo planReader, instructorRepo instructorReader) *ClientService {
	return &ClientService{
		clientRepo:     clientRepo,
		planRepo:       planRepo,
		instructorRepo: instructorRepo,
	}
}

type CreateClientInput struct {
	Name           string
	Age            int
	Sex            string
	Email          string
	Phone          string
	PlanName       string
	InstructorName string
}

// Create registers the client row only; the first workout comes from a
// separate workout creation, which also sets the client's current-workout
// pointer.
func (s *ClientService) Create(ctx context.Context, input CreateClientInput) (*models.Client, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if input.Email == "" {
		return nil, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if input.Age <= 0 {
		return nil, &ValidationError{Field: "age", Reason: "must be positive"}
	}

	// Pre-checks give the precise collided field; the insert itself is still
	// guarded by the unique constraint on email.
	if _, err := s.clientRepo.GetByName(ctx, input.Name); err == nil {
		return nil, &DuplicateError{Entity: "client", Field: "name", Value: input.Name}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storeErr(err)
	}
	if _, err := s.clientRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, &DuplicateError{Entity: "client", Field: "email", Value: input.Email}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storeErr(err)
	}

	plan, err := s.planRepo.GetByName(ctx, input.PlanName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "plan", Name: input.PlanName}
		}
		return nil, storeErr(err)
	}
	instructor, err := s.instructorRepo.GetByName(ctx, input.InstructorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "instructor", Name: input.InstructorName}
		}
		return nil, storeErr(err)
	}

	client := &models.Client{
		Name:         input.Name,
		Age:          input.Age,
		Sex:          input.Sex,
		Email:        input.Email,
		Phone:        input.Phone,
		PlanID:       plan.ID,
		InstructorID: instructor.ID,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, &DuplicateError{Entity: "client", Field: "email", Value: input.Email}
		}
		return nil, storeErr(err)
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, page, limit int) ([]models.Client, int, error) {
	offset := (page - 1) * limit
	clients, err := s.clientRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	total, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return clients, total, nil
}
