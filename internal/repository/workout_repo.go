package repository

import (
	"context"
	"time"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	query := `
		INSERT INTO workouts (client_id, instructor_id, start_date, end_date, plan_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		workout.ClientID,
		workout.InstructorID,
		workout.StartDate,
		workout.EndDate,
		workout.PlanID,
	).Scan(&workout.ID)
	return wrapUnique(err)
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id int64) (*models.Workout, error) {
	query := `
		SELECT id, client_id, instructor_id, start_date, end_date, plan_id
		FROM workouts
		WHERE id = $1
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query, id).Scan(
		&workout.ID,
		&workout.ClientID,
		&workout.InstructorID,
		&workout.StartDate,
		&workout.EndDate,
		&workout.PlanID,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// ExistsForClient checks the duplicate rule for workout creation: same client
// with the same start and (derived) end date.
func (r *WorkoutRepository) ExistsForClient(ctx context.Context, clientID int64, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM workouts
			WHERE client_id = $1 AND start_date = $2 AND end_date = $3
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, clientID, start, end).Scan(&exists)
	return exists, err
}

func (r *WorkoutRepository) ListByClient(ctx context.Context, clientID int64) ([]models.Workout, error) {
	query := `
		SELECT id, client_id, instructor_id, start_date, end_date, plan_id
		FROM workouts
		WHERE client_id = $1
		ORDER BY start_date, id
	`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var workout models.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.ClientID,
			&workout.InstructorID,
			&workout.StartDate,
			&workout.EndDate,
			&workout.PlanID,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}
