package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flighttracker/api"
	"github.com/Domenick1991/flighttracker/config"
	"github.com/Domenick1991/flighttracker/internal/bootstrap"
	"github.com/Domenick1991/flighttracker/internal/cache"
	"github.com/Domenick1991/flighttracker/internal/kafka"
	"github.com/Domenick1991/flighttracker/internal/lookup"
	"github.com/Domenick1991/flighttracker/internal/repository"
	"github.com/Domenick1991/flighttracker/internal/service/flights"
	"github.com/Domenick1991/flighttracker/internal/service/preferences"
	"github.com/Domenick1991/flighttracker/internal/synth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prefStore, closeStore, err := openPreferenceStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open preference store: %v", err)
	}
	defer closeStore.Close()

	client := lookup.NewClient(cfg.Lookup.BaseURL, lookup.WithTimeout(time.Duration(cfg.Lookup.TimeoutSeconds)*time.Second))

	var opts []flights.FlightServiceOption
	if cfg.RouteCacheEnabled() {
		routeCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.RouteTTLSeconds)*time.Second)
		defer routeCache.Close()
		opts = append(opts, flights.WithRouteCache(routeCache))
	}
	if cfg.EventsEnabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, flights.WithLookupEvents(producer, cfg.Kafka.LookupEventsTopic))
	}

	flightService := flights.NewFlightService(client, synth.New(nil), opts...)
	preferenceService := preferences.NewPreferenceService(prefStore)

	logStartupHints(cfg)

	router := api.NewRouter(flightService, preferenceService)
	if err := bootstrap.Run(ctx, cfg.HTTP.Address, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func openPreferenceStore(ctx context.Context, cfg *config.Config) (repository.PreferenceRepository, io.Closer, error) {
	switch cfg.Preferences.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPreferenceRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, closerFunc(func() error { pool.Close(); return nil }), nil
	default:
		repo, err := repository.OpenSQLitePreferences(cfg.Preferences.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func logStartupHints(cfg *config.Config) {
	log.Printf("flight lookup listening on %s, routes from %s", cfg.HTTP.Address, cfg.Lookup.BaseURL)
	log.Printf("try flights like AA1234 (American), UA2345 (United), DL1234 (Delta), BA117 (British Airways)")
	log.Printf("times, gates and status are simulated: the route service provides route data only")
	if cfg.RouteCacheEnabled() {
		log.Printf("route cache: redis %s, ttl %ds", cfg.Redis.Addr, cfg.Cache.RouteTTLSeconds)
	}
	if cfg.EventsEnabled() {
		log.Printf("lookup events: kafka topic %s", cfg.Kafka.LookupEventsTopic)
	}
}
