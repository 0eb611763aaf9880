package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/medahead/conftarget/internal/seeder"
	"github.com/medahead/conftarget/pkg/logger"
)

// Default configuration constants.
const (
	defaultContactCount = 50
	defaultSeed         = 42
	defaultTimeout      = 30 * time.Second
)

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:8080", "Base URL of the service")
		contactCount = flag.Int("contacts", defaultContactCount, "Number of demo contacts to generate")
		conferenceID = flag.String("conference", "all", "Conference id to scope analyze/suggest calls")
		seed         = flag.Int64("seed", defaultSeed, "Random seed for generated data")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg := &seeder.Config{
		BaseURL:      *baseURL,
		ContactCount: *contactCount,
		ConferenceID: *conferenceID,
		Seed:         *seed,
		Timeout:      *timeout,
	}

	if err := seeder.Run(context.Background(), cfg); err != nil {
		logger.Get().Error(context.Background(), "seed run failed", logger.Error(err))
		os.Exit(1)
	}
}
