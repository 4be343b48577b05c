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

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/teamdesk-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/teamdesk-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/teamdesk-backend-go/internal/service/dashboard"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/service/leave"
	todoService "github.com/cmlabs-hris/teamdesk-backend-go/internal/service/todo"
	"github.com/go-chi/httplog/v3"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teamdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	loc, err := timezone.Load(cfg.App.Timezone)
	if err != nil {
		return err
	}
	clock := timezone.SystemClock

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	todoRepo := postgresql.NewTodoRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, clock)
	if err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	authService := serviceAuth.NewAuthService(userRepo, JWTService, clock)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, leaveRepo, clock, loc)
	calendarSvc := leave.NewCalendarService(leaveRepo)
	todoSvc := todoService.NewTodoService(todoRepo, projectRepo, clock, loc, cfg.Todo.LockHour)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, clock, loc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Logger:      logger,
			LogLevel:    cfg.SlogLevel(),
		},
		JWTService,
		clock,
		appHTTP.NewAuthHandler(authService, clock),
		appHTTP.NewAttendanceHandler(attendanceSvc, clock),
		appHTTP.NewLeaveHandler(calendarSvc, clock, loc),
		appHTTP.NewTodoHandler(todoSvc, clock),
		appHTTP.NewDashboardHandler(dashboardSvc, clock),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
