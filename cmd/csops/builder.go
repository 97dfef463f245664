package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/csops-dev/csops/adapters/drivers"
	"github.com/csops-dev/csops/adapters/store/rdb"
	"github.com/csops-dev/csops/config/csopscfg"
	"github.com/csops-dev/csops/internal/logging"
	"github.com/csops-dev/csops/usecase/history"
	"github.com/csops-dev/csops/usecase/host"
	"github.com/csops-dev/csops/usecase/zone"
)

// loadConfig reads and validates the config named by the global --config flag.
func loadConfig(cmd *cobra.Command) (*csopscfg.Root, error) {
	path, _ := cmd.Flags().GetString("config")
	return csopscfg.Load(path)
}

// buildDriver constructs the configured resource driver.
func buildDriver(cfg *csopscfg.Root) (drivers.Driver, error) {
	return drivers.New(cfg.Driver.Name, &drivers.Config{
		URL:       cfg.API.URL,
		Key:       cfg.API.Key,
		Secret:    cfg.API.Secret,
		Timeout:   time.Duration(cfg.API.Timeout) * time.Second,
		VerifySSL: cfg.API.VerifySSLEnabled(),
		Settings:  cfg.Driver.Settings,
	})
}

// buildZoneUseCase creates the zone use case with driver ports.
func buildZoneUseCase(cmd *cobra.Command) (*zone.UseCase, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	drv, err := buildDriver(cfg)
	if err != nil {
		return nil, err
	}
	return &zone.UseCase{Ports: &zone.Ports{Zone: drv.Zones()}}, nil
}

// buildHostUseCase creates the host use case with driver ports.
func buildHostUseCase(cmd *cobra.Command) (*host.UseCase, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	drv, err := buildDriver(cfg)
	if err != nil {
		return nil, err
	}
	return &host.UseCase{Ports: &host.Ports{Host: drv.Hosts()}}, nil
}

// buildHistoryUseCase creates the history use case. It returns nil without
// error when no history store is configured.
func buildHistoryUseCase(cmd *cobra.Command) (*history.UseCase, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.History.URL == "" {
		return nil, nil
	}
	db, err := rdb.OpenFromURL(cfg.History.URL)
	if err != nil {
		return nil, err
	}
	if err := rdb.AutoMigrate(db); err != nil {
		return nil, err
	}
	return &history.UseCase{Repos: &history.Repos{History: rdb.NewHistoryRepository(db)}}, nil
}

// recordRun persists one reconcile outcome when a history store is
// configured. Recording failures are logged, never surfaced: the reconcile
// outcome already printed is the authoritative result.
func recordRun(ctx context.Context, cmd *cobra.Command, in *history.RecordInput) {
	u, err := buildHistoryUseCase(cmd)
	if err != nil {
		logging.FromContext(ctx).Warn(ctx, "history store unavailable", "err", err.Error())
		return
	}
	if u == nil {
		return
	}
	if _, err := u.Record(ctx, in); err != nil {
		logging.FromContext(ctx).Warn(ctx, "failed to record reconcile run", "err", err.Error())
	}
}
