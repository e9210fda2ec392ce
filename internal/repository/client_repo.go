package repository

import (
	"context"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type ClientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (name, age, sex, email, phone, plan_id, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		client.Name,
		client.Age,
		client.Sex,
		client.Email,
		client.Phone,
		client.PlanID,
		client.InstructorID,
	).Scan(&client.ID)
	return wrapUnique(err)
}

func (r *ClientRepository) GetByName(ctx context.Context, name string) (*models.Client, error) {
	return r.getBy(ctx, "name", name)
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	return r.getBy(ctx, "email", email)
}

func (r *ClientRepository) getBy(ctx context.Context, column, value string) (*models.Client, error) {
	query := `
		SELECT id, name, age, sex, email, phone, plan_id, instructor_id, workout_id
		FROM clients
		WHERE ` + column + ` = $1
		ORDER BY id
		LIMIT 1
	`
	var client models.Client
	err := r.db.QueryRow(ctx, query, value).Scan(
		&client.ID,
		&client.Name,
		&client.Age,
		&client.Sex,
		&client.Email,
		&client.Phone,
		&client.PlanID,
		&client.InstructorID,
		&client.WorkoutID,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// SetWorkout records the client's current workout. Only called when the
// pointer is still unset; it never moves an existing reference.
func (r *ClientRepository) SetWorkout(ctx context.Context, clientID, workoutID int64) error {
	query := `
		UPDATE clients
		SET workout_id = $2
		WHERE id = $1 AND workout_id IS NULL
	`
	_, err := r.db.Exec(ctx, query, clientID, workoutID)
	return err
}

func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]models.Client, error) {
	query := `
		SELECT id, name, age, sex, email, phone, plan_id, instructor_id, workout_id
		FROM clients
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var client models.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Age,
			&client.Sex,
			&client.Email,
			&client.Phone,
			&client.PlanID,
			&client.InstructorID,
			&client.WorkoutID,
		); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total)
	return total, err
}
