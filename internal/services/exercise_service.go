package services

import (
	"context"
	"errors"
	"strings"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/repository"
)

type exerciseStore interface {
	Create(ctx context.Context, exercise *models.Exercise) error
	Exists(ctx context.Context, name, muscleGroup string) (bool, error)
}

type ExerciseService struct {
	exerciseRepo exerciseStore
}

func NewExerciseService(exerciseRepo exerciseStore) *ExerciseService {
	return &ExerciseService{exerciseRepo: exerciseRepo}
}

func (s *ExerciseService) Create(ctx context.Context, name, muscleGroup string) (*models.Exercise, error) {
	name = strings.TrimSpace(name)
	muscleGroup = strings.TrimSpace(muscleGroup)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if muscleGroup == "" {
		return nil, &ValidationError{Field: "muscle_group", Reason: "must not be empty"}
	}

	exists, err := s.exerciseRepo.Exists(ctx, name, muscleGroup)
	if err != nil {
		return nil, storeErr(err)
	}
	if exists {
		return nil, &DuplicateError{Entity: "exercise", Field: "name", Value: name + " / " + muscleGroup}
	}

	exercise := &models.Exercise{Name: name, MuscleGroup: muscleGroup}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, &DuplicateError{Entity: "exercise", Field: "name", Value: name + " / " + muscleGroup}
		}
		return nil, storeErr(err)
	}
	return exercise, nil
}
