package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/raminfosys/erp-backend-go/internal/config"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
	"github.com/raminfosys/erp-backend-go/internal/handler/http/middleware"
	"github.com/raminfosys/erp-backend-go/internal/pkg/jwt"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Project      ProjectHandler
	Task         TaskHandler
	Leave        LeaveHandler
	Attendance   AttendanceHandler
	Announcement AnnouncementHandler
	Snapshot     SnapshotHandler
	Events       EventsHandler
}

// NewLogger builds the ECS-formatted JSON logger shared by the request log
// and the rest of the application.
func NewLogger(cfg config.AppConfig) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLevel(cfg.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "raminfosys-erp"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// EventSource cannot send headers, so the token may ride in the query
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader, middleware.TokenFromQuery))
			r.Use(middleware.AuthRequired(JWTService))

			r.Get("/events", h.Events.Stream)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)

			r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/snapshot", h.Snapshot.Get)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Patch("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionProjectView)).Get("/", h.Project.List)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionProjectManage))
					r.Post("/", h.Project.Create)
					r.Post("/{id}/members", h.Project.AssignMember)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionTaskViewOwn)).Get("/", h.Task.List)
				r.With(middleware.RequirePermission(user.PermissionTaskAssign)).Post("/", h.Task.Create)
				r.With(middleware.RequirePermission(user.PermissionTaskUpdateOwn)).Patch("/{id}/status", h.Task.UpdateStatus)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/", h.Leave.List)
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", h.Leave.Create)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Patch("/{id}/status", h.Leave.UpdateStatus)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/", h.Attendance.List)
				r.With(middleware.RequirePermission(user.PermissionAttendanceExport)).Get("/export", h.Attendance.Export)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceCreate))
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Post("/{id}/check-out", h.Attendance.CheckOut)
				})
				r.With(middleware.RequirePermission(user.PermissionAttendanceApprove)).Patch("/{id}/status", h.Attendance.Review)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAnnouncementView)).Get("/", h.Announcement.List)
				r.With(middleware.RequirePermission(user.PermissionAnnouncementPublish)).Post("/", h.Announcement.Create)
			})
		})
	})

	return r
}
