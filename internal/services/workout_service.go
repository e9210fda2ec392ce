package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/repository"
)

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type workoutReader interface {
	GetByID(ctx context.Context, id int64) (*models.Workout, error)
	ExistsForClient(ctx context.Context, clientID int64, start, end time.Time) (bool, error)
	ListByClient(ctx context.Context, clientID int64) ([]models.Workout, error)
}

type exerciseReader interface {
	GetByName(ctx context.Context, name string) (*models.Exercise, error)
}

type assignmentStore interface {
	Create(ctx context.Context, assignment *models.WorkoutExercise) error
	Exists(ctx context.Context, workoutID, exerciseID int64, sets, reps int) (bool, error)
}

type WorkoutService struct {
	db             txBeginner
	clientRepo     clientReader
	planRepo       planReader
	workoutRepo    workoutReader
	exerciseRepo   exerciseReader
	assignmentRepo assignmentStore
}

func NewWorkoutService(
	db txBeginner,
	clientRepo clientReader,
	planRepo planReader,
	workoutRepo workoutReader,
	exerciseRepo exerciseReader,
	assignmentRepo assignmentStore,
) *WorkoutService {
	return &WorkoutService{
		db:             db,
		clientRepo:     clientRepo,
		planRepo:       planRepo,
		workoutRepo:    workoutRepo,
		exerciseRepo:   exerciseRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Create registers a workout for the named client. Instructor and plan come
// from the client row, and the end date is derived once from the plan's
// duration; a later plan change never recomputes it. The insert and the
// first-workout pointer update share one transaction.
func (s *WorkoutService) Create(ctx context.Context, clientName string, startDate time.Time) (*models.Workout, error) {
	client, err := s.clientRepo.GetByName(ctx, clientName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "client", Name: clientName}
		}
		return nil, storeErr(err)
	}

	plan, err := s.planRepo.GetByID(ctx, client.PlanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "plan", Name: clientName + "'s plan"}
		}
		return nil, storeErr(err)
	}

	startDate = truncateToDay(startDate)
	endDate := addMonths(startDate, plan.DurationMonths)

	exists, err := s.workoutRepo.ExistsForClient(ctx, client.ID, startDate, endDate)
	if err != nil {
		return nil, storeErr(err)
	}
	if exists {
		return nil, &DuplicateError{
			Entity: "workout",
			Field:  "start date",
			Value:  startDate.Format("2006-01-02"),
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	workout := &models.Workout{
		ClientID:     client.ID,
		InstructorID: client.InstructorID,
		StartDate:    startDate,
		EndDate:      endDate,
		PlanID:       client.PlanID,
	}
	if err := repository.NewWorkoutRepository(tx).Create(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, &DuplicateError{
				Entity: "workout",
				Field:  "start date",
				Value:  startDate.Format("2006-01-02"),
			}
		}
		return nil, storeErr(err)
	}

	if client.WorkoutID == nil {
		if err := repository.NewClientRepository(tx).SetWorkout(ctx, client.ID, workout.ID); err != nil {
			return nil, storeErr(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr(err)
	}
	return workout, nil
}

// ListForClient returns the named client's workouts in start-date order, so
// a caller can pick one before assigning exercises.
func (s *WorkoutService) ListForClient(ctx context.Context, clientName string) ([]models.Workout, error) {
	client, err := s.clientRepo.GetByName(ctx, clientName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "client", Name: clientName}
		}
		return nil, storeErr(err)
	}

	workouts, err := s.workoutRepo.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	return workouts, nil
}

// AssignExercise attaches an exercise with a set/rep prescription to an
// existing workout.
func (s *WorkoutService) AssignExercise(ctx context.Context, workoutID int64, exerciseName string, sets, reps int) (*models.WorkoutExercise, error) {
	if sets <= 0 {
		return nil, &ValidationError{Field: "sets", Reason: "must be positive"}
	}
	if reps <= 0 {
		return nil, &ValidationError{Field: "reps", Reason: "must be positive"}
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "workout", Name: "selected workout"}
		}
		return nil, storeErr(err)
	}

	exercise, err := s.exerciseRepo.GetByName(ctx, exerciseName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "exercise", Name: exerciseName}
		}
		return nil, storeErr(err)
	}

	exists, err := s.assignmentRepo.Exists(ctx, workout.ID, exercise.ID, sets, reps)
	if err != nil {
		return nil, storeErr(err)
	}
	if exists {
		return nil, &DuplicateError{Entity: "assignment", Field: "exercise", Value: exerciseName}
	}

	assignment := &models.WorkoutExercise{
		WorkoutID:  workout.ID,
		ExerciseID: exercise.ID,
		Sets:       sets,
		Reps:       reps,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, &DuplicateError{Entity: "assignment", Field: "exercise", Value: exerciseName}
		}
		return nil, storeErr(err)
	}
	return assignment, nil
}
