// Package app wires configuration, logging and the report pipeline together.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/processors"
	"cdr-metrics/internal/providers"
	"cdr-metrics/internal/reports"
	"cdr-metrics/internal/shared/configs"
	"cdr-metrics/internal/shared/loggers"
	"cdr-metrics/internal/stores"
)

// App holds the long-lived pieces of the report generator: resolved
// configuration, the logger, and the historic report cache shared across
// report runs.
type App struct {
	cfg     *configs.Config
	logger  loggers.Logger
	procCfg processors.Config
	cache   stores.ReportCache
}

// New resolves configuration into runtime dependencies.
func New(cfg *configs.Config) (*App, error) {
	logger, err := loggers.New(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Metrics.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load reporting timezone %q: %w", cfg.Metrics.TimeZone, err)
	}

	startDate, err := time.ParseInLocation(time.DateOnly, cfg.Metrics.StartDate, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metrics start date %q: %w", cfg.Metrics.StartDate, err)
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		procCfg: processors.Config{
			Location:           loc,
			StartDate:          startDate,
			ConsentAbandonment: time.Duration(cfg.Metrics.ConsentAbandonmentSeconds) * time.Second,
			AuthCodeValidity:   time.Duration(cfg.Metrics.AuthCodeValiditySeconds) * time.Second,
		},
		cache: stores.NewReportCache(
			time.Duration(cfg.Cache.ExpiryMinutes)*time.Minute, loc, nil),
	}, nil
}

// Logger exposes the application logger for the entrypoint.
func (a *App) Logger() loggers.Logger {
	return a.logger
}

// GenerateReport reads a snapshot document from disk and computes the report
// for the requested period.
func (a *App) GenerateReport(ctx context.Context, snapshotPath, periodName string) (*models.MetricsReport, error) {
	period, err := models.ParsePeriod(periodName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %q: %w", snapshotPath, err)
	}
	snapshot, err := providers.UnmarshalSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %q: %w", snapshotPath, err)
	}

	provider := providers.NewSnapshotProvider(snapshot)
	service := reports.NewReportService(provider, a.procCfg, a.cache, nil)
	return service.GetReport(ctx, period)
}
