package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/platform/config"
)

const retryDelay = 2 * time.Second

// NewPostgresDB opens the pool and waits for the database to accept
// connections, retrying cfg.ConnectRetries times.
func NewPostgresDB(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	for i := 1; i <= cfg.ConnectRetries; i++ {
		log.Info().Int("attempt", i).Int("max", cfg.ConnectRetries).Str("host", cfg.Host).Msg("connecting to database")

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()

		if err == nil {
			log.Info().Msg("database connected")
			return db, nil
		}

		log.Warn().Err(err).Dur("retry_in", retryDelay).Msg("database not ready yet")

		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("connect database after %d attempts: %w", cfg.ConnectRetries, err)
}
