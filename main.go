package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"hotel-forecast/config"
	"hotel-forecast/di"
	"hotel-forecast/logger"
	"hotel-forecast/server/handlers"
)

var log = logger.New("Main")

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	env := flag.String("env", "dev", "runtime environment: dev or prod")
	exportPath := flag.String("export", "", "render every dashboard tab into this HTML file and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, err := di.NewContainer(ctx, cfg, *env)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	if *exportPath != "" {
		if err := exportDashboard(ctx, container, *exportPath); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		log.Infof("Dashboard exported to %s", *exportPath)
		return
	}

	if err := container.CacheRefresherService.Refresh(ctx); err != nil {
		log.Warnf("Initial table load failed, pages will show the error until the data is fixed: %v", err)
	}
	container.CacheRefresherService.StartPeriodicJob(ctx, cfg.Cache.RefreshInterval)

	if err := container.DashboardHttpServer.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// exportDashboard runs one render cycle and writes all tabs to path. A failed
// cycle still writes the error page, and the failure is returned.
func exportDashboard(ctx context.Context, c *di.Container, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	d, buildErr := c.DashboardService.Build(ctx)
	if buildErr != nil {
		if err := c.PageHandler.RenderError(f, buildErr); err != nil {
			return fmt.Errorf("failed to render error page: %w", err)
		}
		return buildErr
	}
	if err := c.PageHandler.Render(f, d, handlers.AllTabs...); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}
