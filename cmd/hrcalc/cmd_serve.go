package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hrcalc/internal/app/server"
	"hrcalc/internal/domain/auth"
)

const defaultTokenTTL = 24 * time.Hour

var (
	tokenSubject string
	tokenRole    string
	tokenTTL     time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serves the calculation API on APP_ADDR until SIGINT or SIGTERM, then drains
in-flight requests for up to SHUTDOWN_TIMEOUT.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token signed with JWT_SECRET",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(serveContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.New(cfg, logger)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

func runToken(cmd *cobra.Command, args []string) error {
	if !auth.KnownRole(tokenRole) {
		return fmt.Errorf("unknown role %q", tokenRole)
	}
	token, err := auth.GenerateToken(cfg.JWTSecret, tokenSubject, tokenRole, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

// serveContext falls back to Background when the command runs outside Execute.
func serveContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
