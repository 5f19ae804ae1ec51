package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"cdr-metrics/internal/app"
	"cdr-metrics/internal/shared/configs"
)

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to the configuration file")
	snapshotPath := flag.String("snapshot", "", "path to the snapshot document to report on")
	period := flag.String("period", "all", "reporting period: current, historic or all")
	flag.Parse()

	if *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -snapshot flag")
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	logger := application.Logger()
	ctx := logger.WithContext(context.Background())

	report, err := application.GenerateReport(ctx, *snapshotPath, *period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate report: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
