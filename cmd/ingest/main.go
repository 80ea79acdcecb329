// Command ingest performs a single pipeline run and prints the result. It is
// the manual counterpart of the httpd scheduler, useful for cron-driven
// deployments and local inspection of source behavior.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jonesrussell/trendscout/internal/bootstrap"
	"github.com/jonesrussell/trendscout/internal/config"
	"github.com/jonesrussell/trendscout/internal/logger"
)

const runTimeout = 10 * time.Minute

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := logger.Must(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development || cfg.Service.Debug,
	})
	defer func() { _ = log.Sync() }()

	comps := bootstrap.New(cfg, log, nil)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	result, err := comps.Pipeline.Run(ctx)
	if err != nil {
		log.Error("ingest run failed", logger.Error(err))
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Error("encode result", logger.Error(err))
		os.Exit(1)
	}
	fmt.Println(string(out))
}
