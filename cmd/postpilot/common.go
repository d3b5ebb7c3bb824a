package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/config"
	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/jobsource"
	"github.com/postpilot/postpilot/internal/logging"
)

// loadDefaults reads --config and fills the gaps from the environment.
// Without --config only the environment is used.
func loadDefaults() (config.Config, error) {
	env := config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JobFeedURL:  os.Getenv("JOB_FEED_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}
	env.Verbose = verbose
	if configPath == "" {
		return env, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	merged := cfg.MergeWithDefaults(env)
	merged.Verbose = merged.Verbose || verbose
	return merged, nil
}

// cliLogger is silent unless verbose output was asked for.
func cliLogger(cfg config.Config) (*zap.Logger, error) {
	if !cfg.Verbose {
		return zap.NewNop(), nil
	}
	level := cfg.LogLevel
	if level == "" {
		level = "debug"
	}
	return logging.New(level)
}

// buildSource merges the database and the remote feed when configured,
// in that order, and falls back to the sample board.
func buildSource(database *db.DB, feedURL string, logger *zap.Logger) jobsource.Source {
	var sources []jobsource.Source
	if database != nil {
		sources = append(sources, jobsource.NewPostgresSource(database, logger))
	}
	if feedURL != "" {
		sources = append(sources, jobsource.NewHTTPSource(feedURL, nil))
	}
	switch len(sources) {
	case 0:
		logger.Info("no job source configured, using sample jobs")
		return jobsource.NewStaticSource(jobsource.Fixture(time.Now()))
	case 1:
		return sources[0]
	}
	return jobsource.NewMulti(sources...)
}

// openSource connects to dbURL when set and builds the source. The returned
// func releases the connection.
func openSource(ctx context.Context, dbURL, feedURL string, logger *zap.Logger) (jobsource.Source, func(), error) {
	if dbURL == "" {
		return buildSource(nil, feedURL, logger), func() {}, nil
	}
	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return buildSource(database, feedURL, logger), database.Close, nil
}

// loadCatalog opens the configured source and loads it once.
func loadCatalog(ctx context.Context, dbURL, feedURL string, logger *zap.Logger) (*jobsource.Catalog, func(), error) {
	src, closeFn, err := openSource(ctx, dbURL, feedURL, logger)
	if err != nil {
		return nil, nil, err
	}
	catalog := jobsource.NewCatalog(src, logger)
	if err := catalog.Refresh(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return catalog, closeFn, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
