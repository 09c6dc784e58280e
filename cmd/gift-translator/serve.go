// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gift-translator/internal/calculator"
	"github.com/pdiddy/gift-translator/internal/constants"
	"github.com/pdiddy/gift-translator/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the translator as a JSON HTTP API",
	Long: `Serve starts an HTTP server with the routes

  POST /api/translate            {"expression": "...", "direction": "sm-to-gift"}
  GET  /api/constants[?category=geometric]
  GET  /api/constants/{symbol}
  GET  /api/templates
  GET  /api/examples
  GET  /api/observables/{key}[?experimental=...]
  GET  /api/predictions
  GET  /healthz

The server stops gracefully on interrupt.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Duration("request-timeout", 0, "per-request timeout (default 10s)")

	viper.BindPFlag(keyAddr, serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag(keyRequestTimeout, serveCmd.Flags().Lookup("request-timeout"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	tr, err := newTranslator()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(tr, calculator.New(constants.New()), serverConfig(), os.Stderr)
	return srv.ListenAndServe(ctx)
}
