package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chatbot-service/internal/config"
	"github.com/s21platform/chatbot-service/internal/deferred"
	api "github.com/s21platform/chatbot-service/internal/generated"
	"github.com/s21platform/chatbot-service/internal/infra"
	"github.com/s21platform/chatbot-service/internal/pkg/validator"
	"github.com/s21platform/chatbot-service/internal/relay"
	"github.com/s21platform/chatbot-service/internal/repository/memory"
	db "github.com/s21platform/chatbot-service/internal/repository/postgres"
	"github.com/s21platform/chatbot-service/internal/rest"
)

const notificationConsumerGroupID = "chatbot-notification-relay"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var dbRepo rest.DBRepo
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pgRepo := db.New(cfg)
		defer pgRepo.Close()
		dbRepo = pgRepo
	default:
		dbRepo = memory.New()
	}

	var eventRelay rest.EventRelay
	var closeRelay func()
	switch cfg.Relay.Driver {
	case config.RelayDriverKafka:
		producerConfig := kafkalib.DefaultProducerConfig(cfg.Kafka.Host, cfg.Kafka.Port, cfg.Kafka.NotificationTopic)
		producer := kafkalib.NewProducer(producerConfig)

		broker := relay.NewBroker(producer, logger)

		consumerConfig := kafkalib.DefaultConsumerConfig(
			cfg.Kafka.Host,
			cfg.Kafka.Port,
			cfg.Kafka.NotificationTopic,
			notificationConsumerGroupID,
		)
		consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
		}
		consumer.RegisterHandler(ctx, broker.Handler)

		eventRelay = broker
		closeRelay = broker.Close
	default:
		queue := relay.New()
		eventRelay = queue
		closeRelay = queue.Close
	}

	runner := deferred.New(dbRepo, eventRelay, logger, cfg.Chat.ReplyDelay)
	handler := rest.New(dbRepo, eventRelay, runner, validator.New())

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.MetricsHTTP(next, metrics)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(fmt.Sprintf("failed to shut down HTTP server: %v", err))
		}

		// Release stream consumers, then wait out in-flight delayed replies.
		closeRelay()
		runner.Wait()

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
