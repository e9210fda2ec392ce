package repository

import (
	"context"
	"time"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (client_id, paid_on, amount, plan_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		payment.ClientID,
		payment.PaidOn,
		payment.Amount,
		payment.PlanID,
	).Scan(&payment.ID)
	return wrapUnique(err)
}

// ExistsForClientOnDate implements the duplicate rule for payment entry: one
// payment per client per day, regardless of amount or plan.
func (r *PaymentRepository) ExistsForClientOnDate(ctx context.Context, clientID int64, paidOn time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payments WHERE client_id = $1 AND paid_on = $2
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, clientID, paidOn).Scan(&exists)
	return exists, err
}

func (r *PaymentRepository) ListByClient(ctx context.Context, clientID int64) ([]models.Payment, error) {
	query := `
		SELECT id, client_id, paid_on, amount, plan_id
		FROM payments
		WHERE client_id = $1
		ORDER BY paid_on, id
	`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.ClientID,
			&payment.PaidOn,
			&payment.Amount,
			&payment.PlanID,
		); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}
