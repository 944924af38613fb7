// cmd/submitter/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"application-submitter/internal/common/config"
	"application-submitter/internal/common/logger"
	"application-submitter/internal/common/observability"
	"application-submitter/internal/submission"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		return 1
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	client := submission.NewClient(cfg.Endpoint, log)
	runner := submission.NewRunner(cfg, client, log, obs)

	return runner.Run(context.Background())
}
