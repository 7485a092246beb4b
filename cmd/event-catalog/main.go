package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventCatalog/internal/catalog"
	"eventCatalog/internal/catalog/remote"
	"eventCatalog/internal/config"
	"eventCatalog/internal/http-server/handlers/event/cancelRegistration"
	"eventCatalog/internal/http-server/handlers/event/createEvent"
	"eventCatalog/internal/http-server/handlers/event/deleteEvent"
	"eventCatalog/internal/http-server/handlers/event/getAllEvents"
	"eventCatalog/internal/http-server/handlers/event/getEvent"
	"eventCatalog/internal/http-server/handlers/event/registerEvent"
	"eventCatalog/internal/http-server/handlers/event/updateEvent"
	"eventCatalog/internal/http-server/handlers/organizer/dashboard"
	"eventCatalog/internal/http-server/handlers/organizer/organizerEvents"
	"eventCatalog/internal/http-server/handlers/registration/myRegistrations"
	"eventCatalog/internal/http-server/middleware/mwlogger"
	"eventCatalog/internal/lib/logger/handlers/slogpretty"
	"eventCatalog/internal/lib/logger/sl"
	"eventCatalog/internal/models"
	"eventCatalog/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event catalog", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	sess := session.New()
	if cfg.Remote.Token != "" {
		if err := sess.SetToken(cfg.Remote.Token); err != nil {
			log.Error("failed to set remote token", sl.Err(err))
			os.Exit(1)
		}
	}

	adapter := remote.New(log, cfg.Remote.BaseURL, cfg.Remote.Timeout, sess, cfg.Remote.CapacityOffset)

	var opts []catalog.Option
	if cfg.SeedFile != "" {
		seed, err := loadSeed(cfg.SeedFile)
		if err != nil {
			log.Error("failed to load seed file", sl.Err(err))
			os.Exit(1)
		}

		log.Info("seed events loaded", slog.Int("count", len(seed)))
		opts = append(opts, catalog.WithSeed(seed))
	}

	store := catalog.New(log, sess, adapter, opts...)

	if sess.Active() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Remote.Timeout)
		if err := store.LoadAll(ctx); err != nil {
			log.Warn("initial load failed, starting with local state", sl.Err(err))
		}
		cancel()
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/events", createEvent.New(log, store))
	router.Get("/events", getAllEvents.New(log, store))
	router.Get("/events/{id}", getEvent.New(log, store))
	router.Put("/events/{id}", updateEvent.New(log, store))
	router.Delete("/events/{id}", deleteEvent.New(log, store))
	router.Post("/events/{id}/register", registerEvent.New(log, store))
	router.Post("/events/{id}/cancel", cancelRegistration.New(log, store))
	router.Get("/users/{id}/registrations", myRegistrations.New(log, store))
	router.Get("/organizers/{id}/events", organizerEvents.New(log, store))
	router.Get("/organizers/{id}/dashboard", dashboard.New(log, store))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				store.RefreshStatuses()
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func loadSeed(path string) ([]models.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err = json.Unmarshal(data, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
