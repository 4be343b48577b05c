package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	FrontendURL string
	Logger      *slog.Logger
	LogLevel    slog.Level
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	clock timezone.Clock,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	todoHandler TodoHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	// Punch origins are read from RemoteAddr.
	r.Use(chiMiddleware.RealIP)

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  cfg.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, clock(), "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, clock(), http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth(), clock))

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequirePermission(clock, user.PermissionAttendancePunch))
				r.Get("/today", attendanceHandler.GetToday)
				r.Post("/punch-in", attendanceHandler.PunchIn)
				r.Post("/punch-out", attendanceHandler.PunchOut)
				r.Get("/calendar", leaveHandler.GetMonthlyCalendar)
			})

			r.Route("/todos", func(r chi.Router) {
				r.Get("/", todoHandler.List)
				r.Get("/board", todoHandler.Board)
				r.Post("/", todoHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", todoHandler.Get)
					r.Patch("/", todoHandler.Update)
					r.Patch("/status", todoHandler.UpdateStatus)

					// Admin only
					r.With(middleware.RequirePermission(clock, user.PermissionTodoDelete)).
						Delete("/", todoHandler.Delete)
				})
			})

			r.Get("/dashboard", dashboardHandler.GetOverview)
		})
	})
	return r
}
