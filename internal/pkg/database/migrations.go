package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/Lexv0lk/token-store/internal/pkg/logging"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const pgxDriverName = "pgx"

// MigrateDatabase applies every pending goose migration found at the root of migrations.
func MigrateDatabase(ctx context.Context, databaseUrl string, migrations fs.FS, logger logging.Logger) error {
	db, err := sql.Open(pgxDriverName, databaseUrl)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, res := range results {
		logger.Info("migration applied", "source", res.Source.Path, "duration", res.Duration.String())
	}

	return nil
}
