package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/triagedesk/backend/internal/config"
	httpapi "github.com/triagedesk/backend/internal/http"
	"github.com/triagedesk/backend/internal/remote"
	"github.com/triagedesk/backend/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "triagedesk",
	Short: "Complaint triage dashboard backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var (
	generateOutFlag string
	generateSeed    int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a sample dataset and write it as JSON",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateOutFlag, "output", "-", "Output path, - for stdout")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 for time-based)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "triagedesk-backend").Logger()

	snapshot, err := buildSnapshot(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build dataset snapshot")
	}

	router := httpapi.Router(cfg, snapshot, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
	return nil
}

// buildSnapshot prefers the remote dataset when a remote URL is configured
// and falls back to local generation on any failure.
func buildSnapshot(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*store.Snapshot, error) {
	opts := store.Options{
		Seed:           cfg.Seed,
		CustomerCount:  cfg.CustomerCount,
		ComplaintCount: cfg.ComplaintCount,
		ActivityCount:  cfg.ActivityCount,
	}

	if cfg.RemoteAPIURL == "" {
		return store.Build(opts, logger)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	client := remote.Client{BaseURL: cfg.RemoteAPIURL}
	dataset, err := client.FetchDataset(fetchCtx)
	if err != nil {
		logger.Warn().Err(err).Msg("remote dataset unavailable, falling back to local generation")
		return store.Build(opts, logger)
	}

	logger.Info().Str("remote", cfg.RemoteAPIURL).Int("complaints", len(dataset.Complaints)).Msg("dataset loaded from remote source")
	return store.FromRemote(dataset.Customers(), dataset.Teams, dataset.Complaints, dataset.Events), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if generateSeed != 0 {
		cfg.Seed = generateSeed
	}

	snapshot, err := store.Build(store.Options{
		Seed:           cfg.Seed,
		CustomerCount:  cfg.CustomerCount,
		ComplaintCount: cfg.ComplaintCount,
		ActivityCount:  cfg.ActivityCount,
	}, zerolog.Nop())
	if err != nil {
		return err
	}

	out := os.Stdout
	if generateOutFlag != "-" && generateOutFlag != "" {
		f, err := os.Create(generateOutFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}
