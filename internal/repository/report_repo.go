package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
)

// NoInstructorLabel groups clients whose instructor row cannot be resolved in
// the per-instructor breakdown.
const NoInstructorLabel = "no instructor assigned"

// ReportRepository holds the read-only aggregation queries behind the
// dashboard and report pages. Nothing here writes.
type ReportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) ClientsByPlan(ctx context.Context, planName string) ([]models.ClientPlanRow, error) {
	query := `
		SELECT c.name, p.name
		FROM clients c
		JOIN plans p ON c.plan_id = p.id
		WHERE p.name = $1
		ORDER BY c.name
	`
	rows, err := r.db.Query(ctx, query, planName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ClientPlanRow
	for rows.Next() {
		var row models.ClientPlanRow
		if err := rows.Scan(&row.ClientName, &row.PlanName); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WorkoutCountByInstructor counts workout rows led by the named instructor,
// not distinct clients: a client with three workouts counts three times.
func (r *ReportRepository) WorkoutCountByInstructor(ctx context.Context, instructorName string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM workouts w
		JOIN instructors i ON w.instructor_id = i.id
		WHERE i.name = $1
	`
	var count int
	err := r.db.QueryRow(ctx, query, instructorName).Scan(&count)
	return count, err
}

// ClientsByInstructor groups client rows per instructor. A client whose
// instructor row cannot be resolved falls under NoInstructorLabel instead of
// being dropped.
func (r *ReportRepository) ClientsByInstructor(ctx context.Context) ([]models.InstructorClientCount, error) {
	query := `
		SELECT COALESCE(i.name, $1), COUNT(*)
		FROM clients c
		LEFT JOIN instructors i ON c.instructor_id = i.id
		GROUP BY i.name
		ORDER BY COUNT(*) DESC, 1 ASC
	`
	rows, err := r.db.Query(ctx, query, NoInstructorLabel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.InstructorClientCount
	for rows.Next() {
		var row models.InstructorClientCount
		if err := rows.Scan(&row.InstructorName, &row.Clients); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// PaymentSummaryPerClient returns one row per client, clients without
// payments included with a zero total and a nil last-payment date.
func (r *ReportRepository) PaymentSummaryPerClient(ctx context.Context) ([]models.ClientPaymentSummary, error) {
	query := `
		SELECT c.id, c.name, COALESCE(SUM(p.amount), 0), MAX(p.paid_on)
		FROM clients c
		LEFT JOIN payments p ON p.client_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ClientPaymentSummary
	for rows.Next() {
		var row models.ClientPaymentSummary
		if err := rows.Scan(&row.ClientID, &row.ClientName, &row.TotalPaid, &row.LastPayment); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MonthlyRevenue sums payments per calendar month in ascending order. Months
// without payments do not appear.
func (r *ReportRepository) MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenueRow, error) {
	query := `
		SELECT to_char(paid_on, 'YYYY-MM') AS month, SUM(amount)
		FROM payments
		GROUP BY month
		ORDER BY month
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.MonthlyRevenueRow
	for rows.Next() {
		var row models.MonthlyRevenueRow
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// TopPlan returns the plan with the most clients, ties broken by plan name,
// or nil when no clients exist.
func (r *ReportRepository) TopPlan(ctx context.Context) (*models.PlanUsage, error) {
	query := `
		SELECT p.name, COUNT(*)
		FROM clients c
		JOIN plans p ON c.plan_id = p.id
		GROUP BY p.name
		ORDER BY COUNT(*) DESC, p.name ASC
		LIMIT 1
	`
	var usage models.PlanUsage
	err := r.db.QueryRow(ctx, query).Scan(&usage.PlanName, &usage.Clients)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &usage, nil
}

// WorkoutDetails joins exercise names and muscle groups at read time
// rather than reading persisted label copies. An empty clientName returns
// every client's rows.
func (r *ReportRepository) WorkoutDetails(ctx context.Context, clientName string) ([]models.WorkoutExerciseRow, error) {
	query := `
		SELECT c.name, w.start_date, w.end_date, e.name, e.muscle_group, we.sets, we.reps
		FROM workout_exercises we
		JOIN workouts w ON we.workout_id = w.id
		JOIN clients c ON w.client_id = c.id
		JOIN exercises e ON we.exercise_id = e.id
		WHERE $1 = '' OR c.name = $1
		ORDER BY c.name, w.start_date, e.name
	`
	rows, err := r.db.Query(ctx, query, clientName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.WorkoutExerciseRow
	for rows.Next() {
		var row models.WorkoutExerciseRow
		if err := rows.Scan(
			&row.ClientName,
			&row.StartDate,
			&row.EndDate,
			&row.Exercise,
			&row.MuscleGroup,
			&row.Sets,
			&row.Reps,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ReportRepository) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats

	counts := `
		SELECT
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM plans),
			(SELECT COUNT(*) FROM payments
				WHERE date_trunc('month', paid_on) = date_trunc('month', CURRENT_DATE)),
			(SELECT COALESCE(AVG(age), 0) FROM clients),
			(SELECT COUNT(DISTINCT client_id) FROM workouts WHERE end_date >= CURRENT_DATE),
			(SELECT COUNT(DISTINCT client_id) FROM workouts
				WHERE start_date >= CURRENT_DATE - INTERVAL '30 days'),
			(SELECT COALESCE(SUM(amount), 0) FROM payments
				WHERE date_trunc('month', paid_on) = date_trunc('month', CURRENT_DATE))
	`
	err := r.db.QueryRow(ctx, counts).Scan(
		&stats.TotalClients,
		&stats.TotalPlans,
		&stats.PaymentsThisMonth,
		&stats.AvgClientAge,
		&stats.ActiveClients,
		&stats.NewClients30d,
		&stats.RevenueThisMonth,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
