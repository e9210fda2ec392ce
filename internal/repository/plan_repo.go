package repository

import (
	"context"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

// GetByName resolves a plan by name alone. The natural key is
// (name, price, duration) so several rows may share a name; the oldest row
// wins, matching the form lookups.
func (r *PlanRepository) GetByName(ctx context.Context, name string) (*models.Plan, error) {
	query := `
		SELECT id, name, monthly_price, duration_months
		FROM plans
		WHERE name = $1
		ORDER BY id
		LIMIT 1
	`
	var plan models.Plan
	err := r.db.QueryRow(ctx, query, name).Scan(
		&plan.ID,
		&plan.Name,
		&plan.MonthlyPrice,
		&plan.DurationMonths,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*models.Plan, error) {
	query := `
		SELECT id, name, monthly_price, duration_months
		FROM plans
		WHERE id = $1
	`
	var plan models.Plan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID,
		&plan.Name,
		&plan.MonthlyPrice,
		&plan.DurationMonths,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) List(ctx context.Context) ([]models.Plan, error) {
	query := `
		SELECT id, name, monthly_price, duration_months
		FROM plans
		ORDER BY name, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.Plan
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.MonthlyPrice, &plan.DurationMonths); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}
