package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rona-hr/rona-backend-go/internal/config"
	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
	appHTTP "github.com/rona-hr/rona-backend-go/internal/handler/http"
	"github.com/rona-hr/rona-backend-go/internal/pkg/cron"
	"github.com/rona-hr/rona-backend-go/internal/pkg/database"
	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
	"github.com/rona-hr/rona-backend-go/internal/pkg/jwt"
	"github.com/rona-hr/rona-backend-go/internal/pkg/metrics"
	"github.com/rona-hr/rona-backend-go/internal/pkg/sse"
	"github.com/rona-hr/rona-backend-go/internal/repository/memory"
	"github.com/rona-hr/rona-backend-go/internal/repository/postgresql"
	calendarService "github.com/rona-hr/rona-backend-go/internal/service/calendar"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var prefRepo calendar.PreferenceRepository
	if cfg.Database.Enabled {
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns:       cfg.Database.MaxConns,
			ConnectTimeout: cfg.Database.ConnectTimeout,
		})
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
		prefRepo = postgresql.NewCalendarPreferenceRepository(db)
		slog.Info("Calendar preferences stored in PostgreSQL", "host", cfg.Database.Host, "db", cfg.Database.Name)
	} else {
		prefRepo = memory.NewCalendarPreferenceRepository()
		slog.Warn("DATABASE_ENABLED is false, calendar preferences are kept in memory")
	}

	yearMode, err := ethiopian.ParseYearMode(cfg.Calendar.YearMode)
	if err != nil {
		return fmt.Errorf("CALENDAR_YEAR_MODE: %w", err)
	}

	hub := sse.NewHub()
	recorder := metrics.NewRecorder(cfg.Metrics.Enabled)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	calendarSvc, err := calendarService.NewCalendarService(prefRepo, hub, recorder, calendarService.RealClock{}, calendarService.Config{
		DefaultLanguage: calendar.Language(cfg.Calendar.DefaultLanguage),
		YearMode:        yearMode,
		Timezone:        cfg.Calendar.Timezone,
	})
	if err != nil {
		return fmt.Errorf("init calendar service: %w", err)
	}

	scheduler := cron.NewScheduler(ctx)
	cron.NewCalendarJobs(calendarSvc, cfg.Calendar.TickInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc, JWTService)

	routerOpts := appHTTP.RouterOptions{
		Env:            cfg.App.Env,
		LogLevel:       level,
		AllowedOrigins: cfg.App.FrontendURL,
	}
	if cfg.Metrics.Enabled {
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = recorder.Handler()
	}
	router := appHTTP.NewRouter(JWTService, calendarHandler, routerOpts)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// SSE connections stay open, so no WriteTimeout. They end with ctx.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
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

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
