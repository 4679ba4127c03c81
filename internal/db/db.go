package db

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/matcha-inventory/internal/config"
	"github.com/BruksfildServices01/matcha-inventory/internal/store"
	"github.com/BruksfildServices01/matcha-inventory/internal/store/memstore"
	"github.com/BruksfildServices01/matcha-inventory/internal/store/mongostore"
)

// OpenInventory selects the document backend for the lifetime of the
// process. When MongoDB does not answer the startup probe the in-process
// store is used instead and nothing is retried later.
func OpenInventory(ctx context.Context, cfg *config.Config, log *slog.Logger) store.Backend {
	backend, err := mongostore.Connect(ctx, mongostore.Options{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDatabase,
		ConnectTimeout: cfg.MongoConnectTimeout,
		SocketTimeout:  cfg.MongoSocketTimeout,
	})
	if err != nil {
		log.Warn("mongodb unavailable, using in-memory storage; data will not survive a restart",
			"error", err,
		)
		return memstore.New()
	}

	log.Info("connected to mongodb")
	return backend
}
