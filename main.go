package main

import (
	"context"
	"database/sql"
	stdnet "net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"twigane/internal/business"
	"twigane/internal/cache"
	"twigane/internal/config"
	"twigane/internal/net"
	"twigane/internal/quiz"
	"twigane/internal/repository"
	"twigane/internal/responder"
	"twigane/internal/whatsapp"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, reading configuration from the environment")
	}

	cfg := config.Load()
	if !cfg.Configured() {
		log.Warn("WhatsApp credentials are not configured, outbound messages will fail")
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.WithError(err).Fatal("open postgres")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.WithError(err).Fatal("ping postgres")
	}

	daily := cache.NewDaily(cfg.RedisAddr)
	defer daily.Close()

	repo := repository.NewRepository(db)
	tracker := business.NewTracker(log, repo, daily)
	aggregator := business.NewAggregator(log, repo, daily)
	sender := whatsapp.New(cfg.WhatsAppToken, cfg.PhoneNumberID, log)

	service := net.NewNet(log, responder.New(), sender, tracker, aggregator, quiz.NewBank(), cfg.VerifyToken)

	mux := http.NewServeMux()
	service.Register(mux)

	srv := &http.Server{
		Addr:              stdnet.JoinHostPort("", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
