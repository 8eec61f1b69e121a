package bootstrap

import (
	"flag"
	"fmt"

	"github.com/jadebrew/site-manager/internal/config"
	"github.com/jadebrew/site-manager/internal/logger"
)

// LoadConfig loads configuration. Uses the -config flag, defaulting to
// config.yml in the working directory.
func LoadConfig() (*config.Config, error) {
	configPath := flag.String("config", "config.yml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates the service logger from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		logger.String("service", "site-manager"),
		logger.String("version", version),
	), nil
}
