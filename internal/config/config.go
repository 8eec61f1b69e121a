package config

import (
	"errors"
	"time"
)

const (
	defaultServerPort     = 8060
	defaultServerTimeout  = 30
	defaultRedisAddress   = "localhost:6379"
	defaultStoreBaseURL   = "https://api.jsonbin.io/v3/b"
	defaultTranslateModel = "claude-sonnet-4-5"
	defaultAutosaveEvery  = "@every 5m"
)

type Config struct {
	Debug     bool            `env:"APP_DEBUG" yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Redis     RedisConfig     `yaml:"redis"`
	Cloud     CloudConfig     `yaml:"cloud"`
	Translate TranslateConfig `yaml:"translate"`
	Auth      AuthConfig      `yaml:"auth"`
	Autosave  AutosaveConfig  `yaml:"autosave"`
}

type ServerConfig struct {
	Host         string        `env:"SERVER_HOST" yaml:"host"`
	Port         int           `env:"SERVER_PORT" yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" yaml:"cors_origins"`
}

// RedisConfig covers both the local content snapshot and the event stream;
// they share one connection. Enabled is the feature flag for the whole
// local tier: with it off the service runs cloud-or-defaults only.
type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS"  yaml:"address"`
	Password string `env:"REDIS_PASSWORD" yaml:"password"`
	DB       int    `env:"REDIS_DB"       yaml:"db"`
	Enabled  bool   `env:"REDIS_ENABLED"  yaml:"enabled"`
	Events   bool   `env:"REDIS_EVENTS_ENABLED" yaml:"events"`
}

// CloudConfig seeds the remote document store settings. The admin can
// change everything but BaseURL at runtime; runtime values win over these.
type CloudConfig struct {
	Enabled    bool     `env:"CLOUD_ENABLED"     yaml:"enabled"`
	BaseURL    string   `env:"CLOUD_BASE_URL"    yaml:"base_url"`
	DocumentID string   `env:"CLOUD_DOCUMENT_ID" yaml:"document_id"`
	APIKey     string   `env:"CLOUD_API_KEY"     yaml:"api_key"`
	ShardIDs   []string `env:"CLOUD_SHARD_IDS"   yaml:"shard_ids"`
}

type TranslateConfig struct {
	APIKey string `env:"ANTHROPIC_API_KEY" yaml:"api_key"`
	Model  string `env:"TRANSLATE_MODEL"   yaml:"model"`
}

type AuthConfig struct {
	AdminPassword string `env:"AUTH_ADMIN_PASSWORD" yaml:"admin_password"`
	JWTSecret     string `env:"AUTH_JWT_SECRET"     yaml:"jwt_secret"`
}

// AutosaveConfig drives the periodic background save of dirty edits.
type AutosaveConfig struct {
	Enabled  bool   `env:"AUTOSAVE_ENABLED" yaml:"enabled"`
	Schedule string `env:"AUTOSAVE_SCHEDULE" yaml:"schedule"`
}

func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port <= 0 {
		return errors.New("server.port is required and must be positive")
	}
	if c.Auth.AdminPassword == "" {
		return errors.New("auth.admin_password is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.Cloud.Enabled && c.Cloud.APIKey == "" {
		return errors.New("cloud.api_key is required when cloud is enabled")
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultServerTimeout * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultServerTimeout * time.Second
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{
			"http://localhost:3000", // Public site frontend
			"http://localhost:3001", // Admin dashboard frontend
		}
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = defaultRedisAddress
	}
	if cfg.Cloud.BaseURL == "" {
		cfg.Cloud.BaseURL = defaultStoreBaseURL
	}
	if cfg.Translate.Model == "" {
		cfg.Translate.Model = defaultTranslateModel
	}
	if cfg.Autosave.Schedule == "" {
		cfg.Autosave.Schedule = defaultAutosaveEvery
	}
}
