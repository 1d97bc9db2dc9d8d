package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/limatime/attendance-backend-go/internal/domain/user"
	"github.com/limatime/attendance-backend-go/internal/handler/http/middleware"
	"github.com/limatime/attendance-backend-go/internal/handler/http/response"
	"github.com/limatime/attendance-backend-go/internal/pkg/jwt"
)

// Handlers groups every route handler the router mounts.
type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Employee   EmployeeHandler
	Schedule   ScheduleHandler
	Leave      LeaveHandler
	Commission CommissionHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/auth/me", h.Auth.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).Post("/punch", h.Attendance.Punch)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewOwn))
					r.Get("/today", h.Attendance.Today)
					r.Get("/history", h.Attendance.History)
				})

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/all", h.Attendance.List)
				r.With(middleware.RequirePermission(user.PermissionAttendanceExport)).Get("/export", h.Report.ExportAttendance)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/active", h.Employee.ListActiveEmployees)
					r.Get("/{id}", h.Employee.GetEmployee)
				})
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Patch("/{id}", h.Employee.UpdateEmployee)
			})

			r.Route("/schedule", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionScheduleView)).Get("/", h.Schedule.Get)
				r.With(middleware.RequirePermission(user.PermissionScheduleManage)).Put("/", h.Schedule.Update)
			})

			r.Route("/permits", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", h.Leave.CreatePermit)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/my", h.Leave.GetMyPermits)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/", h.Leave.ListPermits)
			})

			r.Route("/commissions", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionCommissionCreate))
					r.Post("/", h.Commission.Create)
					r.Post("/{id}/departure", h.Commission.MarkDeparture)
					r.Post("/{id}/return", h.Commission.MarkReturn)
				})
				r.With(middleware.RequirePermission(user.PermissionCommissionViewOwn)).Get("/my", h.Commission.GetMyCommissions)
				r.With(middleware.RequirePermission(user.PermissionCommissionViewAll)).Get("/", h.Commission.List)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
