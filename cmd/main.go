// Package main is the arbeit command: the job board API server, its schema
// migrations and a token minting helper for local testing.
package main

import (
	"arbeit/internal/config"
	"arbeit/pkg/logger"
	"arbeit/pkg/storage/postgres"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres connects to the configured database. The returned func closes
// the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// loadConfig reads an optional .env file, then the YAML config at path with
// environment overrides, and installs the logger.
func loadConfig(path string, cfg *config.Config) error {
	// variables that are already set win over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env file: %w", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	*cfg = *loaded

	if err := logger.SetupWithLevel(cfg.Environment, cfg.LogLevel); err != nil {
		logger.Warn(context.Background(), "invalid log level, using the environment default",
			zap.String("level", cfg.LogLevel), zap.Error(err))
	}

	return nil
}

func newRootCommand() *cobra.Command {
	// subcommands read the config at run time, after PersistentPreRunE filled it
	cfg := &config.Config{}
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "arbeit",
		Short:         "Job board backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(configPath, cfg)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err) //nolint: forbidigo
	}
	logger.Sync()

	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
