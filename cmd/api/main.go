package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CaptainChua/Staycation/internal/httpapi"
	"github.com/CaptainChua/Staycation/internal/notify"
	"github.com/CaptainChua/Staycation/pkg/config"
	"github.com/CaptainChua/Staycation/pkg/db"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer conn.Close()

	if cfg.MigrationsPath != "" {
		if err := db.Migrate(cfg.MigrationsPath, cfg); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	notifier, closeNotifier, err := buildNotifier(cfg)
	if err != nil {
		log.Fatalf("notifier: %v", err)
	}
	defer closeNotifier()

	router := httpapi.NewRouter(httpapi.Dependencies{
		Cfg:      cfg,
		DB:       conn,
		Notifier: notifier,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("http listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(shutdownCtx)
}

// buildNotifier picks the dispatcher transport from config: AMQP wins when
// configured, then the HTTP webhook, then plain logging for dev.
func buildNotifier(cfg config.Config) (notify.Notifier, func(), error) {
	if cfg.Notify.AMQPURL != "" {
		n, err := notify.NewAMQPNotifier(cfg.Notify.AMQPURL, cfg.Notify.AMQPExchange)
		if err != nil {
			return nil, nil, err
		}
		return n, func() { _ = n.Close() }, nil
	}
	if cfg.Notify.WebhookURL != "" {
		return notify.WebhookNotifier{
			URL:       cfg.Notify.WebhookURL,
			AuthToken: cfg.Notify.WebhookToken,
		}, func() {}, nil
	}
	return notify.LogNotifier{}, func() {}, nil
}
