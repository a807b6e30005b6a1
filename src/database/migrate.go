package database

import (
	"database/sql"
	"embed"

	"backoffice/src/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies all pending goose migrations.
func Migrate(cfg *config.Config) error {
	db, err := sql.Open("pgx", DSN(cfg))
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
