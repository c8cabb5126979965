package main

import (
	root "arbeit"
	"arbeit/internal/config"
	"arbeit/pkg/logger"
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

// migrateCommand constructs the 'migrate' subcommand. It brings the job board
// schema (goose) and the River queue tables up to date, or rolls the schema
// back by one version with --down.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			down, _ := cmd.Flags().GetBool("down")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			if down {
				if err := rollbackSchema(ctx, db); err != nil {
					logger.Fatal(ctx, "could not roll back schema", zap.Error(err))
				}

				return
			}

			if err := migrateSchema(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate schema", zap.Error(err))
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("down", false, "Roll the job board schema back by one version")

	return cmd
}

func newGooseProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(root.Migrations, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("could not create goose provider: %w", err)
	}

	return provider, nil
}

func migrateSchema(ctx context.Context, db *sql.DB) error {
	provider, err := newGooseProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	for _, res := range results {
		logger.Info(ctx, "applied migration",
			zap.Int64("version", res.Source.Version),
			zap.Duration("took", res.Duration))
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("could not read schema version: %w", err)
	}
	logger.Info(ctx, "schema is up to date", zap.Int64("version", version))

	return nil
}

func rollbackSchema(ctx context.Context, db *sql.DB) error {
	provider, err := newGooseProvider(db)
	if err != nil {
		return err
	}

	res, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("could not roll back migration: %w", err)
	}
	logger.Info(ctx, "rolled back migration", zap.Int64("version", res.Source.Version))

	return nil
}

// migrateQueue applies every pending River migration.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not apply river queue migrations: %w", err)
	}
	for _, version := range res.Versions {
		logger.Info(ctx, "applied river queue migration", zap.Int("version", version.Version))
	}

	return nil
}
