package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/sales-insights/pkg/server"
	"github.com/de-tools/sales-insights/pkg/services/config"
	"github.com/de-tools/sales-insights/pkg/services/forecast"
	"github.com/de-tools/sales-insights/pkg/store/databricks"
	duckdbsales "github.com/de-tools/sales-insights/pkg/store/duckdb/sales"
	"github.com/de-tools/sales-insights/pkg/store/sales"
	"github.com/de-tools/sales-insights/pkg/store/snowflake"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	profile string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Insights",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "profiles.ini",
		"Path to the connection profiles file")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "default",
		"Name of the connection profile to serve from")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Found the following profiles:")
	profiles, _ := registry.GetProfiles(ctx)
	for _, p := range profiles {
		logger.Info().Msgf("Name: `%s`, Platform: `%s`", p.Name, p.Platform)
	}

	selected, err := registry.GetProfile(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %s: %w", profile, err)
	}

	stores := sales.NewRegistry(map[string]sales.StoreFactory{
		"duckdb":     duckdbsales.StoreFactory,
		"snowflake":  snowflake.StoreFactory,
		"databricks": databricks.StoreFactory,
	})

	store, err := stores.Create(selected.Platform, selected.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to create store for platform %s: %w", selected.Platform, err)
	}
	defer store.Close()

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Forecast: forecast.NewController(store),
		},
	})

	return webAPI.Start()
}
