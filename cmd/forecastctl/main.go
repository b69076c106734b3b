// forecastctl loads an already-fetched hourly forecast document and renders
// day views, continuous chart windows, hour ranges, and day summaries.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"forecastkit/internal/config"
	"forecastkit/internal/forecast"
	"forecastkit/pkg/logging"
)

const version = "1.0.0"

var (
	flagFile string
	flagDate string
	flagDays int
)

var rootCmd = &cobra.Command{
	Use:           "forecastctl",
	Short:         "Slice hourly forecast data into display views",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Forecast document (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagDate, "date", "d", "", "Start date, YYYY-MM-DD (defaults to the forecast's first day)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Number of days (overrides config)")
}

// app bundles everything a subcommand needs.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	service  *forecast.Service
	summary  *forecast.SummaryService
	forecast *forecast.Forecast
}

// setup loads config, logger, and the forecast document.
func setup() (*app, error) {
	// A missing .env is fine; explicit config still applies.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if flagFile != "" {
		cfg.ForecastFile = flagFile
	}
	if flagDays > 0 {
		cfg.Days = flagDays
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New("forecastctl", version, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	f, err := forecast.NewLoader(logger).LoadFile(cfg.ForecastFile)
	if err != nil {
		logger.Error("forecast load failed", zap.String("file", cfg.ForecastFile), zap.Error(err))
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		service:  forecast.NewService(f, logger),
		summary:  forecast.NewSummaryService(f, logger),
		forecast: f,
	}, nil
}

// startDate resolves the --date flag, defaulting to the forecast's first day.
func (a *app) startDate() (time.Time, error) {
	if flagDate == "" {
		return a.forecast.Period.Start(), nil
	}
	d, err := time.ParseInLocation("2006-01-02", flagDate, a.forecast.Period.Start().Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", flagDate, err)
	}
	return d, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
