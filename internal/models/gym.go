package models

import "time"

type Client struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Sex          string `json:"sex"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PlanID       int64  `json:"plan_id"`
	InstructorID int64  `json:"instructor_id"`
	WorkoutID    *int64 `json:"workout_id"`
}

type Instructor struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type Plan struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	MonthlyPrice   float64 `json:"monthly_price"`
	DurationMonths int     `json:"duration_months"`
}

type Exercise struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
}

type Workout struct {
	ID           int64     `json:"id"`
	ClientID     int64     `json:"client_id"`
	InstructorID int64     `json:"instructor_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	PlanID       int64     `json:"plan_id"`
}

type WorkoutExercise struct {
	ID         int64 `json:"id"`
	WorkoutID  int64 `json:"workout_id"`
	ExerciseID int64 `json:"exercise_id"`
	Sets       int   `json:"sets"`
	Reps       int   `json:"reps"`
}

type Payment struct {
	ID       int64     `json:"id"`
	ClientID int64     `json:"client_id"`
	PaidOn   time.Time `json:"paid_on"`
	Amount   float64   `json:"amount"`
	PlanID   int64     `json:"plan_id"`
}
