// database/bootstrap.go
package database

import (
	"context"

	"cropadvisor/config"
	"cropadvisor/pkg/logger"
	"cropadvisor/pkg/store"
)

// Open picks the document store from config: Mongo when MONGO_URL is set,
// otherwise the embedded sqlite store so the service runs standalone.
func Open(ctx context.Context, cfg config.AppConfig, log *logger.Logger) (store.Store, error) {
	if cfg.MongoURL != "" {
		log.Info("opening mongo store", "db", cfg.DBName)
		return store.NewMongo(ctx, cfg.MongoURL, cfg.DBName)
	}
	log.Info("MONGO_URL not set, using sqlite store", "path", cfg.DBPath)
	return store.NewSQLite(cfg.DBPath)
}
