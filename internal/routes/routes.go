package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RaulSimioni/Sistema-Academia/internal/config"
	"github.com/RaulSimioni/Sistema-Academia/internal/handlers"
	"github.com/RaulSimioni/Sistema-Academia/internal/middleware"
	"github.com/RaulSimioni/Sistema-Academia/internal/repository"
	"github.com/RaulSimioni/Sistema-Academia/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	clientRepo := repository.NewClientRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	planRepo := repository.NewPlanRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	assignmentRepo := repository.NewWorkoutExerciseRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	userRepo := repository.NewUserRepository(db)

	clientService := services.NewClientService(clientRepo, planRepo, instructorRepo)
	paymentService := services.NewPaymentService(paymentRepo, clientRepo, planRepo)
	workoutService := services.NewWorkoutService(db, clientRepo, planRepo, workoutRepo, exerciseRepo, assignmentRepo)
	exerciseService := services.NewExerciseService(exerciseRepo)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	catalogHandler := handlers.NewCatalogHandler(planRepo, instructorRepo)
	clientHandler := handlers.NewClientHandler(clientService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)
	reportHandler := handlers.NewReportHandler(reportRepo)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	protected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	clients := protected.Group("/clients")
	clients.Get("", clientHandler.List)
	clients.Post("", clientHandler.Create)
	clients.Get("/:name/workouts", workoutHandler.ListByClient)
	clients.Get("/:name/payments", paymentHandler.ListByClient)

	protected.Get("/plans", catalogHandler.Plans)
	protected.Get("/instructors", catalogHandler.Instructors)

	protected.Post("/payments", paymentHandler.Create)
	protected.Post("/workouts", workoutHandler.Create)
	protected.Post("/workouts/:id/exercises", workoutHandler.AssignExercise)
	protected.Post("/exercises", exerciseHandler.Create)

	reports := protected.Group("/reports")
	reports.Get("/clients-by-plan", reportHandler.ClientsByPlan)
	reports.Get("/clients-by-instructor", reportHandler.ClientsByInstructor)
	reports.Get("/instructors/:name/workout-count", reportHandler.WorkoutCountByInstructor)
	reports.Get("/payment-summary", reportHandler.PaymentSummary)
	reports.Get("/monthly-revenue", reportHandler.MonthlyRevenue)
	reports.Get("/workout-details", reportHandler.WorkoutDetails)

	protected.Get("/dashboard", reportHandler.Dashboard)

	return registerDocsRoutes(api, cfg)
}
