package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"fleetdesk/internal/config"
	"fleetdesk/internal/hub"
	"fleetdesk/internal/logger"
	"fleetdesk/internal/routes"
	"fleetdesk/internal/store"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile, cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database setup failed")
	}

	events := hub.NewEventHub()
	defer events.Close()

	r := routes.SetupRouter(routes.Deps{
		Store:            store.New(db),
		Hub:              events,
		ContactRecipient: cfg.ContactRecipient,
		CORSOrigins:      cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("addr", srv.Addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
