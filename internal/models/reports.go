package models

import "time"

type ClientPlanRow struct {
	ClientName string `json:"client_name"`
	PlanName   string `json:"plan_name"`
}

type InstructorClientCount struct {
	InstructorName string `json:"instructor_name"`
	Clients        int    `json:"clients"`
}

// ClientPaymentSummary covers every client, including those with no payments:
// TotalPaid is zero and LastPayment nil in that case.
type ClientPaymentSummary struct {
	ClientID    int64      `json:"client_id"`
	ClientName  string     `json:"client_name"`
	TotalPaid   float64    `json:"total_paid"`
	LastPayment *time.Time `json:"last_payment"`
}

type MonthlyRevenueRow struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type PlanUsage struct {
	PlanName string `json:"plan_name"`
	Clients  int    `json:"clients"`
}

type WorkoutExerciseRow struct {
	ClientName  string    `json:"client_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Exercise    string    `json:"exercise"`
	MuscleGroup string    `json:"muscle_group"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
}

type DashboardStats struct {
	TotalClients      int     `json:"total_clients"`
	TotalPlans        int     `json:"total_plans"`
	PaymentsThisMonth int     `json:"payments_this_month"`
	AvgClientAge      float64 `json:"avg_client_age"`
	ActiveClients     int     `json:"active_clients"`
	NewClients30d     int     `json:"new_clients_30d"`
	RevenueThisMonth  float64 `json:"revenue_this_month"`
}
