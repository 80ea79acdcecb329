// Command httpd runs the trendscout HTTP service: the records API plus the
// scheduled ingest pipeline.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonesrussell/trendscout/internal/bootstrap"
	"github.com/jonesrussell/trendscout/internal/config"
	"github.com/jonesrussell/trendscout/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Must(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development || cfg.Service.Debug,
	})
	defer func() { _ = log.Sync() }()

	log.Info("starting trendscout",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	comps := bootstrap.New(cfg, log, nil)

	runCtx, cancelRuns := context.WithCancel(context.Background())
	defer cancelRuns()

	if cfg.Ingest.RunOnStartup {
		go func() {
			if _, err := comps.Pipeline.Run(runCtx); err != nil {
				log.Error("startup ingest run failed", logger.Error(err))
			}
		}()
	}

	if err := comps.Scheduler.Start(runCtx); err != nil {
		log.Fatal("start scheduler", logger.Error(err))
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- comps.Server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatal("server error", logger.Error(err))
		}
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		cancelRuns()
		comps.Scheduler.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), bootstrap.HTTPShutdownTimeout())
		defer cancel()
		if err := comps.Server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", logger.Error(err))
			os.Exit(1)
		}
		log.Info("server stopped gracefully")
	}
}
