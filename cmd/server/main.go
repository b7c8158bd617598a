package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/idea-agent/internal/api"
	"github.com/idea-agent/internal/config"
	"github.com/idea-agent/internal/ideas"
	"github.com/idea-agent/pkg/logger"
)

var (
	cfgFile string
	addr    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ideas-server",
		Short: "HTTP API for the content idea generator",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	listen := cfg.Server.Addr
	if addr != "" {
		listen = addr
	}
	if port := os.Getenv("PORT"); port != "" && addr == "" {
		listen = ":" + port
	}

	// The client is created once; a missing key keeps the server on templates
	generator := ideas.NewFromConfig(context.Background(), cfg, log)

	srv := &http.Server{
		Addr:              listen,
		Handler:           api.NewRouter(api.NewHandler(generator, log), log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", listen).
			Bool("live_generation", generator.LiveEnabled()).
			Str("provider", generator.Provider()).
			Msg("Starting idea server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-sigChan:
	}

	log.Info().Msg("Shutting down idea server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
