package database

import (
	"context"
	"fmt"

	"backoffice/src/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DSN builds the connection string from config, preferring an explicit
// connection_string when set.
func DSN(cfg *config.Config) string {
	if cfg.Databases.SQL.ConnectionString != "" {
		return cfg.Databases.SQL.ConnectionString
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Databases.SQL.Host,
		cfg.Databases.SQL.Username,
		cfg.Databases.SQL.Password,
		cfg.Databases.SQL.Database,
		cfg.Databases.SQL.Port)
}

func SetupDB(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}
	return pool, nil
}
