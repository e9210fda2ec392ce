package repository

import (
	"context"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type WorkoutExerciseRepository struct {
	db DBTX
}

func NewWorkoutExerciseRepository(db DBTX) *WorkoutExerciseRepository {
	return &WorkoutExerciseRepository{db: db}
}

// Create appends an exercise assignment. The natural key includes sets and
// reps, so the same exercise repeated with identical sets/reps is rejected
// while a different set/rep count is a distinct row.
func (r *WorkoutExerciseRepository) Create(ctx context.Context, assignment *models.WorkoutExercise) error {
	query := `
		INSERT INTO workout_exercises (workout_id, exercise_id, sets, reps)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		assignment.WorkoutID,
		assignment.ExerciseID,
		assignment.Sets,
		assignment.Reps,
	).Scan(&assignment.ID)
	return wrapUnique(err)
}

func (r *WorkoutExerciseRepository) Exists(ctx context.Context, workoutID, exerciseID int64, sets, reps int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM workout_exercises
			WHERE workout_id = $1 AND exercise_id = $2 AND sets = $3 AND reps = $4
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, workoutID, exerciseID, sets, reps).Scan(&exists)
	return exists, err
}
