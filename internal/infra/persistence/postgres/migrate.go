package postgres

import (
	"context"
	"embed"
	"log/slog"

	"eventhub/config"
	"eventhub/internal/errors"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// MigrationParams defines the dependencies of RegisterMigrations.
type MigrationParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// RegisterMigrations applies pending migrations on start when migrations.enabled is set.
// It is appended after the connection's ping hook, so the database is reachable when it runs.
func RegisterMigrations(params MigrationParams) {
	if params.Config.Migrations == nil || !params.Config.Migrations.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return RunMigrations(ctx, params.DB, params.Logger)
		},
	})
}

// RunMigrations applies all pending goose migrations from the embedded SQL files.
func RunMigrations(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errors.Wrap(err, "failed to read migration version")
	}
	logger.Info("Database migrations applied", slog.Int64("version", version))

	return nil
}

// MigrationFiles lists the embedded migration file names in apply order.
func MigrationFiles() ([]string, error) {
	entries, err := migrations.ReadDir(migrationsDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded migrations")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}
