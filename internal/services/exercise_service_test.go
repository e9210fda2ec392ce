package services

import (
	"context"
	"errors"
	"testing"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/repository"
)

type stubExerciseStore struct {
	exists    bool
	existsErr error
	createErr error
	created   *models.Exercise
}

func (s *stubExerciseStore) Create(_ context.Context, exercise *models.Exercise) error {
	if s.createErr != nil {
		return s.createErr
	}
	exercise.ID = 7
	s.created = exercise
	return nil
}

func (s *stubExerciseStore) Exists(_ context.Context, _, _ string) (bool, error) {
	return s.exists, s.existsErr
}

func TestCreateExerciseTrimsAndInserts(t *testing.T) {
	exercises := &stubExerciseStore{}
	service := NewExerciseService(exercises)

	exercise, err := service.Create(context.Background(), " Supino Reto ", "Peito")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if exercise.Name != "Supino Reto" {
		t.Errorf("expected trimmed name, got %q", exercise.Name)
	}
	if exercise.ID != 7 {
		t.Errorf("expected assigned id, got %d", exercise.ID)
	}
}

func TestCreateExerciseRejectsDuplicatePair(t *testing.T) {
	service := NewExerciseService(&stubExerciseStore{exists: true})

	_, err := service.Create(context.Background(), "Supino Reto", "Peito")
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
}

func TestCreateExerciseMapsUniqueViolation(t *testing.T) {
	service := NewExerciseService(&stubExerciseStore{createErr: repository.ErrUniqueViolation})

	_, err := service.Create(context.Background(), "Supino Reto", "Peito")
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError from constraint conflict, got %v", err)
	}
}

func TestCreateExerciseValidatesFields(t *testing.T) {
	service := NewExerciseService(&stubExerciseStore{})

	if _, err := service.Create(context.Background(), "", "Peito"); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := service.Create(context.Background(), "Supino", "  "); err == nil {
		t.Error("expected error for empty muscle group")
	}
}
