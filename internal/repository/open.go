package repository

import (
	"context"
	"fmt"

	"github.com/portfolio/backend/internal/config"
)

// Open connects the message store selected by cfg.Driver. The returned
// close function releases the connection and must be called at shutdown.
func Open(ctx context.Context, cfg config.StoreConfig) (MessageRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return NewPgMessageRepository(pool), pool.Close, nil

	case config.DriverMongo:
		client, err := NewMongoClient(ctx, cfg.Mongo.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return NewMongoMessageRepository(coll), closeFn, nil

	case config.DriverSQLite:
		db, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return NewSQLiteMessageRepository(db), func() { _ = db.Close() }, nil

	case config.DriverMemory:
		return NewMemoryMessageRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
