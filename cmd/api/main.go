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

	"github.com/go-chi/httplog/v3"
	"github.com/limatime/attendance-backend-go/internal/config"
	appHTTP "github.com/limatime/attendance-backend-go/internal/handler/http"
	"github.com/limatime/attendance-backend-go/internal/pkg/cron"
	"github.com/limatime/attendance-backend-go/internal/pkg/database"
	"github.com/limatime/attendance-backend-go/internal/pkg/jwt"
	"github.com/limatime/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/limatime/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/limatime/attendance-backend-go/internal/service/auth"
	commissionService "github.com/limatime/attendance-backend-go/internal/service/commission"
	employeeService "github.com/limatime/attendance-backend-go/internal/service/employee"
	"github.com/limatime/attendance-backend-go/internal/service/leave"
	reportService "github.com/limatime/attendance-backend-go/internal/service/report"
	scheduleService "github.com/limatime/attendance-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tx := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	permitRepo := postgresql.NewPermitRepository(db)
	commissionRepo := postgresql.NewCommissionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(employeeRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, scheduleRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, scheduleRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	permitSvc := leave.NewPermitService(permitRepo)
	commissionSvc := commissionService.NewCommissionService(tx, commissionRepo)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Leave:      appHTTP.NewLeaveHandler(permitSvc),
		Commission: appHTTP.NewCommissionHandler(commissionSvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(JWTService).RegisterJobs(scheduler, cfg.Cron.TokenPurgeInterval)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server error", "error", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
