package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrapp/hr-backend-go/internal/pkg/jwt"
)

// RouterOptions carries the environment-dependent parts of the router.
type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Application  ApplicationHandler
	Leave        LeaveHandler
	Dashboard    DashboardHandler
	Employee     EmployeeHandler
	Notification NotificationHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/signup-test", h.Auth.SignupTest)
			r.With(
				jwtauth.Verifier(JWTService.JWTAuth()),
				middleware.AuthRequired(JWTService.JWTAuth()),
			).Get("/me", h.Auth.Me)
		})

		// SSE clients cannot send headers; the stream authenticates with its own token
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/notifications/sse-token", h.Notification.GetSSEToken)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Put("/clock-out", h.Attendance.ClockOut)
				r.Get("/weekly/{employee_id}", h.Attendance.Weekly)
				r.Get("/monthly/{employee_id}", h.Attendance.Monthly)

				r.With(middleware.RequireManager).Get("/all", h.Attendance.Roster)
			})

			r.Route("/applications", func(r chi.Router) {
				r.Post("/", h.Application.Create)
				r.Get("/recent/{employee_id}", h.Application.Recent)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionApplicationViewAll))
					r.Get("/", h.Application.ListAll)
					r.Get("/list", h.Application.List)
				})
				r.With(middleware.RequirePermission(user.PermissionApplicationApprove)).
					Put("/{id}/status", h.Application.UpdateStatus)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/my-status", h.Leave.MyStatus)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewSchedule)).
					Get("/schedule", h.Leave.Schedule)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/summary/{employee_id}", h.Dashboard.Summary)
				r.Get("/work/{employee_id}", h.Dashboard.Work)
			})

			r.With(middleware.RequirePermission(user.PermissionEmployeeView)).
				Get("/employees/{employee_id}", h.Employee.Get)
		})
	})

	return r
}

// ParseLogLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
