package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rosered/backend/internal/config"
	"github.com/rosered/backend/internal/es"
	"github.com/rosered/backend/internal/handlers"
	"github.com/rosered/backend/internal/kvstore"
	"github.com/rosered/backend/internal/logging"
	"github.com/rosered/backend/internal/metrics"
	loggingmw "github.com/rosered/backend/internal/middleware/logging"
	"github.com/rosered/backend/internal/mykafka"
	"github.com/rosered/backend/internal/store"
	httpserver "github.com/rosered/backend/internal/transport/http"
)

const productIndex = "products"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}

	kv := kvstore.New(db, logger)

	authStore := &store.AuthStore{KV: kv, HashPasswords: configuration.AUTH_HASH_PASSWORDS}
	bookingStore := &store.BookingStore{KV: kv}
	staffStore := &store.StaffStore{KV: kv}
	catalogStore := &store.CatalogStore{KV: kv}
	cartStore := &store.CartStore{KV: kv}

	if err := authStore.EnsureDefaultAdmin(); err != nil {
		log.Fatalf("Ошибка создания администратора: %v", err)
	}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	esClient, err := esClientFromConfig(configuration)
	if err != nil {
		log.Fatal(err)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(collector.Middleware())

	deps := httpserver.Deps{
		Auth:           authStore,
		AuthHandler:    &handlers.AuthHandler{Auth: authStore, Producer: prod, Metrics: collector},
		ProductHandler: &handlers.ProductHandler{Catalog: catalogStore, Cart: cartStore, Producer: prod, Metrics: collector, ES: esClient, Index: productIndex},
		BookingHandler: &handlers.BookingHandler{Bookings: bookingStore, Producer: prod, Metrics: collector},
		StaffHandler:   &handlers.StaffHandler{Staff: staffStore, Producer: prod, Metrics: collector},
		CartHandler:    &handlers.CartHandler{Cart: cartStore, Producer: prod, Metrics: collector},
		SearchHandler:  &handlers.SearchHandler{ES: esClient, Index: productIndex},
		Gatherer:       registry,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.SERVER_PORT),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}

func esClientFromConfig(cfg *config.Config) (*elasticsearch.Client, error) {
	if cfg.ES_URL == "" {
		return nil, nil
	}
	return es.NewClient(cfg)
}
