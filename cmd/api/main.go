package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"petpal-lite/internal/adapters/assistant/gemini"
	"petpal-lite/internal/adapters/notify"
	"petpal-lite/internal/jobs"
	"petpal-lite/internal/platform/config"
	"petpal-lite/internal/platform/httpclient"
	"petpal-lite/internal/platform/logger"
	"petpal-lite/internal/ports/assistant"
	"petpal-lite/internal/router"
)

// @title PetPal Lite API
// @version 1.0
// @description Companion de cuidado de mascotas: perfiles, rutinas, recordatorios, análisis de salud y chat con asistente.
// @BasePath /
func main() {
	// .env es opcional, solo para dev local
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	log := logger.NewFromEnv()
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var ai assistant.Assistant
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, httpclient.New(httpclient.DefaultTimeout))
		if err != nil {
			log.Fatal("gemini client", zap.Error(err))
		}
		ai = client
		log.Info("assistant: gemini", zap.String("model", cfg.GeminiModel))
	} else {
		log.Warn("GEMINI_API_KEY not set, using canned assistant responses")
	}

	app, err := router.New(router.Options{
		DSN:                cfg.DBDSN,
		DataDir:            cfg.DataDir,
		Assistant:          ai,
		Logger:             log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins(),
	})
	if err != nil {
		log.Fatal("wiring", zap.Error(err))
	}

	// Chequeo periódico de recordatorios en background
	worker := &jobs.Worker{
		Reminders: app.Reminders,
		Pets:      app.Pets,
		Notifier:  notify.NewLogNotifier(log),
		Interval:  cfg.ReminderInterval,
		Log:       log,
	}
	go worker.Run(ctx)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
}
