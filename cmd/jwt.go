package main

import (
	"arbeit/internal/auth"
	"arbeit/internal/config"
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that signs an access or refresh
// token for a given account using the configured private key. It is meant
// for local testing of the API.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			username, _ := cmd.Flags().GetString("username")
			role, _ := cmd.Flags().GetString("role")
			bid, _ := cmd.Flags().GetString("bid")
			typ, _ := cmd.Flags().GetString("type")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			ID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a uuid", zap.Error(err))
			}
			principal := domain.Principal{ID: ID, Username: username, Role: domain.Role(role), BID: bid}
			if !principal.Role.Valid() {
				logger.Fatal(ctx, "unknown role", zap.String("role", role))
			}
			if principal.IsBusiness() && bid == "" {
				logger.Fatal(ctx, "business tokens need a --bid")
			}

			tokenType := auth.TokenType(typ)
			if tokenType != auth.TokenTypeAccess && tokenType != auth.TokenTypeRefresh {
				logger.Fatal(ctx, "unknown token type", zap.String("type", typ))
			}

			tokens, err := auth.NewTokens(auth.TokenOptions{
				PrivateKey: cfg.JWT.PrivateKey,
				PublicKey:  cfg.JWT.PublicKey,
				Issuer:     cfg.JWT.Issuer,
			})
			if err != nil {
				logger.Fatal(ctx, "could not load jwt keys", zap.Error(err))
			}

			signed, err := tokens.Sign(principal, tokenType, TTL)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "Account ID (user ID for candidates, business ID for businesses)")
	cmd.Flags().String("username", "", "Login name carried in the token")
	cmd.Flags().String("role", string(domain.RoleUser), "Account role (user or business)")
	cmd.Flags().String("bid", "", "Public business ID, required for business tokens")
	cmd.Flags().String("type", string(auth.TokenTypeAccess), "Token type (access or refresh)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
