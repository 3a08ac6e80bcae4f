package main

import (
	"context"
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	"CoffeeCloud/internal/app"
	"CoffeeCloud/internal/auth"
	"CoffeeCloud/internal/blob"
	"CoffeeCloud/internal/catalog"
	"CoffeeCloud/internal/config"
	"CoffeeCloud/internal/order"
	"CoffeeCloud/internal/user"
	"CoffeeCloud/pkg/kit"
)

func main() {
	service := "coffeecloud"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	store, err := newBlobStore(context.Background(), cfg)
	if err != nil {
		log.Fatal("init blob store", zap.Error(err))
	}

	hasher := auth.NewHasher(cfg.PasswordHashSecret)
	jwt := auth.NewTokenMaker(cfg.WebTokenSecret)

	users := &user.Repo{Store: store, Log: log}
	orders := &order.Repo{Store: store, Log: log}
	cat := catalog.NewStore()

	deps := app.Deps{
		Log:     log,
		Service: service,

		Users:   &user.Server{Log: log, Users: users, Hasher: hasher, JWT: jwt},
		Orders:  &order.Server{Log: log, Orders: orders, Catalog: cat},
		Catalog: &catalog.Server{Catalog: cat},
		JWT:     jwt,

		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	}

	if err := kit.RunHTTPServer(cfg.Addr, app.NewHandler(deps), log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	switch cfg.StorageBackend {
	case "postgres":
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		store := blob.NewPostgresStore(db)
		if err := store.Init(ctx); err != nil {
			return nil, err
		}
		return store, nil

	case "memory":
		return blob.NewMemStore(), nil

	default:
		return blob.NewS3Store(ctx, blob.S3Config{
			Region:       cfg.S3Region,
			Endpoint:     cfg.S3Endpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			UsersBucket:  cfg.UsersBucket,
			OrdersBucket: cfg.OrdersBucket,
		})
	}
}
