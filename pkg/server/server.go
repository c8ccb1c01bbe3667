package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/work-atlas/pkg/handlers/reports"
	"github.com/de-tools/work-atlas/pkg/services/billing"
	"github.com/de-tools/work-atlas/pkg/services/report"

	workatlasmiddleware "github.com/de-tools/work-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Analytics  report.Analytics
	FlagIndex  *billing.Index
	FlagSource billing.FlagSource
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	handler := handlers.NewHandler(deps.Analytics, deps.FlagIndex, deps.FlagSource)

	router := chi.NewRouter()

	router.Use(workatlasmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", handler.Dashboard)
			r.Get("/clients", handler.TimeByClient)
			r.Get("/projects", handler.TimeByProject)
			r.Get("/phases", handler.TimeByPhase)
			r.Get("/daily", handler.DailyHours)
			r.Get("/weekly", handler.WeeklySummary)
			r.Get("/monthly", handler.MonthlyComparison)
			r.Get("/activities", handler.TopActivities)
			r.Get("/expenses", handler.ExpenseSummary)
			r.Get("/users", handler.UserSummaries)
			r.Get("/users/hours", handler.HoursByUser)
			r.Get("/users/timeline", handler.UserActivityTimeline)
		})
		r.Post("/billing/reload", handler.ReloadFlags)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
