package repository

import (
	"context"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type InstructorRepository struct {
	db DBTX
}

func NewInstructorRepository(db DBTX) *InstructorRepository {
	return &InstructorRepository{db: db}
}

func (r *InstructorRepository) GetByName(ctx context.Context, name string) (*models.Instructor, error) {
	query := `
		SELECT id, name, specialty
		FROM instructors
		WHERE name = $1
		ORDER BY id
		LIMIT 1
	`
	var instructor models.Instructor
	err := r.db.QueryRow(ctx, query, name).Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.Specialty,
	)
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *InstructorRepository) List(ctx context.Context) ([]models.Instructor, error) {
	query := `
		SELECT id, name, specialty
		FROM instructors
		ORDER BY name, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		if err := rows.Scan(&instructor.ID, &instructor.Name, &instructor.Specialty); err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return instructors, nil
}
