package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/handler/http/middleware"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	holidayHandler HolidayHandler,
	payrollHandler PayrollHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/terminal", authHandler.TerminalLogin)
		})

		// SSE clients cannot set custom headers, so the stream sits
		// outside the authenticated group.
		r.Get("/events", eventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Post("/absent", attendanceHandler.MarkAbsent)
				r.Get("/", attendanceHandler.List)
				r.Put("/{id}", attendanceHandler.Correct)
				r.Get("/{id}/earnings", attendanceHandler.Earnings)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Post("/{id}/approve", leaveHandler.Approve)
				r.Post("/{id}/reject", leaveHandler.Reject)
				r.Get("/business-days", leaveHandler.BusinessDays)
				r.Get("/employee/{employeeID}", leaveHandler.ListByEmployee)
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", overtimeHandler.Submit)
				r.Post("/team", overtimeHandler.SubmitForTeam)
				r.Post("/{id}/approve", overtimeHandler.Approve)
				r.Post("/{id}/reject", overtimeHandler.Reject)
				r.Get("/employee/{employeeID}", overtimeHandler.ListByEmployee)
			})

			r.Get("/holidays/{year}", holidayHandler.ListForYear)

			r.Post("/payroll/calculate", payrollHandler.CalculateWage)
		})
	})
	return r
}
