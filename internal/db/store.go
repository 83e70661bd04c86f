package db

import (
	"context"
	"fmt"

	"portfolio/internal/config"
	"portfolio/internal/repository"
	"portfolio/internal/repository/memory"
	"portfolio/internal/repository/mongostore"
)

// CloseFunc releases the resources held by an opened store.
type CloseFunc func(ctx context.Context) error

// OpenStore connects the storage engine selected by cfg.StoreDriver and
// prepares its schema. Every engine satisfies the same repository.Store.
func OpenStore(ctx context.Context, cfg *config.Config) (*repository.Store, CloseFunc, error) {
	switch cfg.StoreDriver {
	case config.DriverMySQL, config.DriverPostgres:
		open := NewMySQL
		dsn := cfg.MySQLDSN
		if cfg.StoreDriver == config.DriverPostgres {
			open, dsn = NewPostgres, cfg.PostgresDSN
		}
		gormDB, err := open(dsn)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.AutoMigrate(gormDB); err != nil {
			return nil, nil, err
		}
		closeFn := func(context.Context) error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return repository.NewGormStore(gormDB), closeFn, nil

	case config.DriverMongo:
		client, err := NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		if err := mongostore.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		return mongostore.NewStore(database), client.Disconnect, nil

	case config.DriverMemory:
		return memory.NewStore(), func(context.Context) error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
