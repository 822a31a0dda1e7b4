package app

import (
	"fmt"
	"log/slog"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store/drivers/mongo"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store/drivers/sqlite"
)

// OpenStore opens the document store selected by cfg.DatabaseDriver and
// applies its migrations. A store that can't be reached still yields a
// usable value: lists come back empty and writes fail with 503 until it
// connects.
func OpenStore(cfg Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.DatabaseDriver {
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		if cfg.DatabaseFile == ":memory:" {
			dsn = ":memory:"
		}
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply database migrations: %w", err)
		}
		logger.Info("database migrations applied successfully", "file", cfg.DatabaseFile)
		return db, nil

	case DriverMongo:
		if cfg.MongoURI == "" {
			logger.Warn("MONGODB_URI not set, running without a database")
			return store.Disconnected{}, nil
		}
		db, err := mongo.NewStore(mongo.Config{
			URI:          cfg.MongoURI,
			Database:     cfg.MongoDatabase,
			PingInterval: cfg.StorePingInterval,
			Logger:       logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return db, nil

	default:
		logger.Warn("database driver disabled, running without a database")
		return store.Disconnected{}, nil
	}
}
