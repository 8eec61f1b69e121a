package bootstrap

import (
	"github.com/jadebrew/site-manager/internal/config"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/translate"
)

// SetupTranslator selects the translation provider. Without an API key the
// deterministic fallback keeps the edit loop working in development.
func SetupTranslator(cfg *config.Config, log logger.Logger) translate.Translator {
	if cfg.Translate.APIKey == "" {
		log.Warn("No translation API key configured, using static fallback")
		return translate.NewStatic()
	}

	log.Info("Translation provider initialized",
		logger.String("model", cfg.Translate.Model),
	)
	return translate.NewAnthropic(cfg.Translate.APIKey, cfg.Translate.Model)
}
