package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admiralguff/majel/internal/bundle"
	"github.com/admiralguff/majel/internal/config"
	"github.com/admiralguff/majel/internal/server"
	"github.com/admiralguff/majel/internal/store"
)

var (
	servePort   int
	serveBundle string
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the roster, reservations, docks, and crew recommendations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveBundle, "bundle", "", "Path to the effect catalog bundle JSON")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfig)
	if err != nil {
		return err
	}
	if serveBundle != "" {
		cfg.Bundle = serveBundle
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	if cfg.Bundle == "" {
		return fmt.Errorf("a bundle path is required (--bundle or MAJEL_BUNDLE)")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	b, err := bundle.Load(cfg.Bundle)
	if err != nil {
		return fmt.Errorf("failed to load bundle: %w", err)
	}

	st, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close()

	srv := server.New(server.Config{Port: cfg.Port}, st, b, b.NewEngine(), logger)
	return srv.Start()
}

// resolveConfig loads the optional config file and overlays the environment.
func resolveConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
