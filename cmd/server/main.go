// Command server runs the grandeur form submission API.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/grandeurhq/form-service/internal/config"
	"github.com/grandeurhq/form-service/internal/database"
	"github.com/grandeurhq/form-service/internal/handler"
	"github.com/grandeurhq/form-service/internal/queue"
	"github.com/grandeurhq/form-service/internal/repository"
	"github.com/grandeurhq/form-service/internal/router"
)

func main() {
	// A local .env file complements the environment; real variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithField("err", err).Fatal("invalid configuration")
	}
	config.InitLog(cfg.Log)

	store, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.WithField("err", err).Fatal("failed to establish database connection")
	}
	log.Info("database connection established")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = store.EnsureSchema(bootCtx)
	cancel()
	if err != nil {
		log.WithField("err", err).Fatal("failed to create database tables")
	}
	log.Info("database tables ready")

	submissions := repository.NewSubmissionRepo(store)
	events := queue.NewPublisher(cfg.AMQPURL)
	if events.Enabled() {
		log.Info("form event publishing enabled")
	}

	e := router.New(cfg.CORS,
		handler.NewFormHandler(submissions, events),
		handler.NewHealthHandler(store))

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	log.WithField("addr", addr).Info("server listening")

	var srvErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case srvErr = <-errCh:
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithField("err", err).Warn("server shutdown was not clean")
	}
	if err := store.Close(); err != nil {
		log.WithField("err", err).Warn("error closing database connection")
	}
	if srvErr != nil {
		log.WithField("err", srvErr).Fatal("server failed")
	}
	log.Info("server stopped")
}
