package main

import (
	"arbeit/internal/api"
	"arbeit/internal/api/handler/v1handler"
	"arbeit/internal/application"
	"arbeit/internal/auth"
	"arbeit/internal/config"
	"arbeit/internal/mentor"
	"arbeit/internal/notify"
	"arbeit/internal/posting"
	"arbeit/internal/profile"
	"arbeit/internal/scanner"
	"arbeit/internal/worker"
	"arbeit/pkg/cache"
	"arbeit/pkg/llm/gemini"
	"arbeit/pkg/logger"
	"arbeit/pkg/mailer"
	"arbeit/pkg/mailer/gmail"
	"arbeit/pkg/mailer/logmailer"
	"arbeit/pkg/storage/postgres"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const googleCallbackPath = "/v1/auth/google/callback"

func getCache(ctx context.Context, cfg *config.Config) (*cache.Redis, func()) {
	redis, err := cache.New(ctx, cache.Options{
		URL:             cfg.Redis.URL,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.ConnMaxIdleTime,
		Prefix:          cfg.Redis.Prefix,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return redis, func() {
		logger.Info(ctx, "closing redis client...")
		if err := redis.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

func getMailer(ctx context.Context, cfg *config.Config) mailer.Mailer {
	if cfg.Mail.Driver != "gmail" {
		logger.Info(ctx, "using log mailer, e-mails are not delivered", zap.String("driver", cfg.Mail.Driver))

		return logmailer.Mailer{}
	}

	client, err := gmail.New(ctx, gmail.Options{
		CredentialsJSON: []byte(cfg.Mail.CredentialsJSON),
		RefreshToken:    cfg.Mail.RefreshToken,
		From:            cfg.Mail.From,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create gmail client", zap.Error(err))
	}

	return client
}

func getAuthenticator(ctx context.Context,
	cfg *config.Config,
	strg *postgres.PgSQL,
	redis *cache.Redis,
	notifier *notify.Notifier) auth.Authenticator {
	tokens, err := auth.NewTokens(auth.TokenOptions{
		PrivateKey: cfg.JWT.PrivateKey,
		PublicKey:  cfg.JWT.PublicKey,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not load jwt keys", zap.Error(err))
	}

	var google auth.GoogleProvider
	if cfg.Google.ClientID != "" {
		google = auth.NewGoogleProvider(auth.GoogleOptions{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  strings.TrimRight(cfg.HTTP.PublicURL, "/") + googleCallbackPath,
		})
	} else {
		logger.Warn(ctx, "google client is not configured, google sign-in is disabled")
	}

	return auth.New(auth.Deps{
		Storage:  strg,
		Cache:    redis,
		Tokens:   tokens,
		Notifier: notifier,
		Google:   google,
	}, auth.NewOptions(cfg))
}

func setupWorkers(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	if !cfg.Worker.Enabled {
		logger.Info(ctx, "background workers are disabled")

		return nil, func(context.Context) {}
	}

	riverClient, err := worker.Start(ctx, strg.Pool, getMailer(ctx, cfg), worker.Options{
		MaxWorkers:     cfg.Worker.MaxWorkers,
		SendsPerSecond: cfg.Mail.SendsPerSecond,
	})
	if err != nil {
		logger.Fatal(ctx, "could not start background workers", zap.Error(err))
	}

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping background workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop background workers", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redis, closeCache := getCache(ctx, cfg)
			defer closeCache()

			generator, err := gemini.New(ctx, gemini.Options{
				APIKey:      cfg.Gemini.APIKey,
				Model:       cfg.Gemini.Model,
				Timeout:     cfg.Gemini.Timeout,
				Temperature: cfg.Gemini.Temperature,
				MaxTokens:   cfg.Gemini.MaxTokens,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create gemini client", zap.Error(err))
			}

			notifier := notify.New(notify.Options{
				MaxAttempts: cfg.Mail.MaxAttempts,
				DedupPeriod: cfg.Mail.DedupPeriod,
			})
			jobs := posting.New(strg, redis, posting.NewOptions(cfg))

			riverClient, stopWorkers := setupWorkers(ctx, cfg, strg)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Auth:         getAuthenticator(ctx, cfg, strg, redis, notifier),
					Jobs:         jobs,
					Applications: application.New(strg, jobs, notifier, application.NewOptions(cfg)),
					Profiles:     profile.New(strg),
					Analyzer:     scanner.New(generator),
					Mentor:       mentor.New(generator),
					Limiter:      redis,
					Checks: map[string]func(ctx context.Context) error{
						"postgres": strg.Ping,
						"redis":    redis.Ping,
					},
				},
				River: riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
