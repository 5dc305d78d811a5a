package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/hrms-lite/hrms-backend-go/internal/handler/http/response"
)

func NewRouter(env string, employeeHandler EmployeeHandler, attendanceHandler AttendanceHandler, dashboardHandler DashboardHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-lite"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{
			"message": "HRMS Lite API is running",
			"version": "1.0.0",
		})
	})

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.ListEmployees)
		r.Post("/", employeeHandler.CreateEmployee)
		r.Get("/{employeeID}", employeeHandler.GetEmployee)
		r.Delete("/{employeeID}", employeeHandler.DeleteEmployee)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", attendanceHandler.ListAttendance)
		r.Post("/", attendanceHandler.MarkAttendance)
		r.Delete("/{employeeID}/{date}", attendanceHandler.DeleteAttendance)
	})

	r.Get("/dashboard/summary", dashboardHandler.GetSummary)

	return r
}
