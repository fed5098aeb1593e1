package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rona-hr/rona-backend-go/internal/domain/user"
	"github.com/rona-hr/rona-backend-go/internal/handler/http/middleware"
	"github.com/rona-hr/rona-backend-go/internal/pkg/jwt"
)

// RouterOptions carries the settings the router needs from config.
type RouterOptions struct {
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
	MetricsPath    string
	MetricsHandler http.Handler
}

func NewRouter(JWTService jwt.Service, calendarHandler CalendarHandler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rona-calendar"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-CSRF-Token"},
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

	if opts.MetricsHandler != nil {
		metricsPath := opts.MetricsPath
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		r.Handle(metricsPath, opts.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/now", calendarHandler.Now)
			r.Get("/convert", calendarHandler.Convert)
			r.Get("/rules", calendarHandler.Rules)
			// SSE authenticates with ?token= when present
			r.Get("/stream", calendarHandler.Stream)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Use(middleware.RequireCompany)

				r.Route("/my", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionCalendarView)).Get("/now", calendarHandler.MyNow)
					r.With(middleware.RequirePermission(user.PermissionCalendarView)).Get("/preference", calendarHandler.GetPreference)
					r.With(middleware.RequirePermission(user.PermissionCalendarManage)).Put("/preference", calendarHandler.UpdatePreference)
					r.With(middleware.RequirePermission(user.PermissionCalendarView)).Post("/stream-token", calendarHandler.StreamToken)
				})
			})
		})
	})

	return r
}
