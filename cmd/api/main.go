package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrapp/hr-backend-go/internal/config"
	appHTTP "github.com/hrapp/hr-backend-go/internal/handler/http"
	"github.com/hrapp/hr-backend-go/internal/pkg/cron"
	"github.com/hrapp/hr-backend-go/internal/pkg/database"
	"github.com/hrapp/hr-backend-go/internal/pkg/jwt"
	"github.com/hrapp/hr-backend-go/internal/pkg/sse"
	"github.com/hrapp/hr-backend-go/internal/repository/postgresql"
	applicationService "github.com/hrapp/hr-backend-go/internal/service/application"
	attendanceService "github.com/hrapp/hr-backend-go/internal/service/attendance"
	serviceAuth "github.com/hrapp/hr-backend-go/internal/service/auth"
	dashboardService "github.com/hrapp/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/hrapp/hr-backend-go/internal/service/employee"
	"github.com/hrapp/hr-backend-go/internal/service/leave"
	notificationService "github.com/hrapp/hr-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logLevel := appHTTP.ParseLogLevel(cfg.App.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		slog.Error("Error migrating database", "error", err)
		os.Exit(1)
	}

	loc := cfg.Location()

	transactor := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.SSEExpiration)
	hub := sse.NewHub(0)
	notifService := notificationService.NewNotificationService(hub)
	quotaCalculator := leave.NewQuotaCalculator(loc)

	authService := serviceAuth.NewAuthService(transactor, employeeRepo, JWTService, serviceAuth.Options{
		AllowSignup:      cfg.App.AllowTestSignup,
		DefaultLeaveDays: cfg.Leave.DefaultAnnualDays,
	})
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, attendanceService.Options{
		Location:          loc,
		StandardCloseHour: cfg.Leave.StandardCloseHour,
	})
	applicationSvc := applicationService.NewApplicationService(applicationRepo, employeeRepo, notifService, applicationService.Options{
		Location: loc,
	})
	leaveSvc := leave.NewLeaveService(applicationRepo, employeeRepo, quotaCalculator, leave.Options{
		Location: loc,
	})
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, applicationRepo, employeeRepo, quotaCalculator, dashboardService.Options{
		Location:          loc,
		StandardCloseHour: cfg.Leave.StandardCloseHour,
	})
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, loc, nil)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.FrontendOrigins,
		Env:            cfg.App.Env,
		LogLevel:       logLevel,
	}, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authService),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Application:  appHTTP.NewApplicationHandler(applicationSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Notification: appHTTP.NewNotificationHandler(notifService, JWTService, 30*time.Second),
	})

	scheduler := cron.NewScheduler(ctx)
	cron.NewAttendanceJobs(attendanceSvc, loc, nil).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "env", cfg.App.Env, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
