package repository

import (
	"context"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	query := `
		INSERT INTO exercises (name, muscle_group)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, exercise.Name, exercise.MuscleGroup).Scan(&exercise.ID)
	return wrapUnique(err)
}

func (r *ExerciseRepository) GetByName(ctx context.Context, name string) (*models.Exercise, error) {
	query := `
		SELECT id, name, muscle_group
		FROM exercises
		WHERE name = $1
		ORDER BY id
		LIMIT 1
	`
	var exercise models.Exercise
	err := r.db.QueryRow(ctx, query, name).Scan(
		&exercise.ID,
		&exercise.Name,
		&exercise.MuscleGroup,
	)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) Exists(ctx context.Context, name, muscleGroup string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM exercises WHERE name = $1 AND muscle_group = $2
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, name, muscleGroup).Scan(&exists)
	return exists, err
}
