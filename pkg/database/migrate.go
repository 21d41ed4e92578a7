package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Colin-Stark/travelwise-server/migrations"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded goose migrations. goose needs a
// database/sql handle, so a short-lived stdlib connection is opened next to
// the pgx pool.
func RunMigrations(ctx context.Context, config utils.DatabaseConfig) error {
	db, err := sql.Open("pgx", ConnString(config))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
