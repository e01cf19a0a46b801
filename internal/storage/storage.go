// Package storage opens the configured backend and builds its repositories.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"theboar/internal/config"
	"theboar/internal/db"
	"theboar/internal/repository"
	"theboar/internal/repository/mongostore"
)

// Repositories is the set of repositories backed by one store.
type Repositories struct {
	Users  repository.UserRepository
	Orders repository.OrderRepository
	Menu   repository.MenuRepository
}

// Open connects to the backend named by cfg.DBDriver, prepares its schema and
// returns the repositories with a function that releases the connection.
// With cfg.ResetDB set, existing data is dropped first.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Repositories, func(), error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return openMySQL(cfg, log)
	case config.DriverMongo:
		return openMongo(ctx, cfg, log)
	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func openMySQL(cfg *config.Config, log zerolog.Logger) (*Repositories, func(), error) {
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB set, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Warn().Err(err).Msg("drop tables")
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		closeFn()
		return nil, nil, err
	}

	return &Repositories{
		Users:  repository.NewUserRepository(gormDB),
		Orders: repository.NewOrderRepository(gormDB),
		Menu:   repository.NewMenuRepository(gormDB),
	}, closeFn, nil
}

func openMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Repositories, func(), error) {
	client, database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Disconnect(context.Background()) }

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB set, dropping all collections")
		if err := db.ResetMongo(ctx, database); err != nil {
			log.Warn().Err(err).Msg("drop collections")
		}
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		closeFn()
		return nil, nil, err
	}

	return &Repositories{
		Users:  mongostore.NewUserRepository(database),
		Orders: mongostore.NewOrderRepository(database),
		Menu:   mongostore.NewMenuRepository(database),
	}, closeFn, nil
}
