package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RaulSimioni/Sistema-Academia/internal/config"
)

type endpointDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Protected   bool   `json:"protected"`
}

var endpointCatalog = []endpointDoc{
	{"POST", "/api/auth/register", "Register a dashboard user", false},
	{"POST", "/api/auth/login", "Log in and receive a bearer token", false},
	{"GET", "/api/v1/clients", "List clients (paginated)", true},
	{"POST", "/api/v1/clients", "Register a client", true},
	{"GET", "/api/v1/clients/:name/workouts", "A client's workouts in start-date order", true},
	{"GET", "/api/v1/clients/:name/payments", "A client's payments in paid-on order", true},
	{"GET", "/api/v1/plans", "Available plans", true},
	{"GET", "/api/v1/instructors", "Available instructors", true},
	{"POST", "/api/v1/payments", "Register a payment at the plan's current price", true},
	{"POST", "/api/v1/workouts", "Register a workout; end date derives from the plan duration", true},
	{"POST", "/api/v1/workouts/:id/exercises", "Assign an exercise with sets and reps", true},
	{"POST", "/api/v1/exercises", "Register an exercise", true},
	{"GET", "/api/v1/reports/clients-by-plan", "Clients on a plan, alphabetical", true},
	{"GET", "/api/v1/reports/clients-by-instructor", "Client counts per instructor, unassigned included", true},
	{"GET", "/api/v1/reports/instructors/:name/workout-count", "Workouts led by an instructor", true},
	{"GET", "/api/v1/reports/payment-summary", "Per-client totals and last payment date", true},
	{"GET", "/api/v1/reports/monthly-revenue", "Revenue per calendar month, ascending", true},
	{"GET", "/api/v1/reports/workout-details", "Workouts joined with their exercises", true},
	{"GET", "/api/v1/dashboard", "KPI scalars and the most used plan", true},
}

// registerDocsRoutes exposes the endpoint catalog in development only; the
// route does not exist in other environments.
func registerDocsRoutes(api fiber.Router, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	api.Get("/docs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "success",
			"endpoints": endpointCatalog,
		})
	})
	return nil
}
