// Package config carga la configuración desde config.yml (opcional) y variables de entorno.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Port    string `mapstructure:"PORT"`
	AppName string `mapstructure:"APP_NAME"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// STORE_DRIVER vacío => se infiere de MONGODB_URI / DB_DSN.
	StoreDriver   string `mapstructure:"STORE_DRIVER"`
	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"MONGODB_DATABASE"`
	PostgresDSN   string `mapstructure:"DB_DSN"`

	JWTSecret string        `mapstructure:"JWT_SECRET_KEY"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	PinataJWT       string        `mapstructure:"PINATA_JWT"`
	PinataGateway   string        `mapstructure:"PINATA_GATEWAY"`
	PinataUploadURL string        `mapstructure:"PINATA_UPLOAD_URL"`
	PinataAPIURL    string        `mapstructure:"PINATA_API_URL"`
	SignedURLTTL    time.Duration `mapstructure:"SIGNED_URL_TTL"`

	PlacesAPIKey  string `mapstructure:"PLACES_API_KEY"`
	PlacesBaseURL string `mapstructure:"PLACES_BASE_URL"`

	BreedModelURL   string `mapstructure:"BREED_MODEL_URL"`
	BreedModelToken string `mapstructure:"DATABRICKS_TOKEN"`

	RedisURL string `mapstructure:"REDIS_URL"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	MaxUploadBytes     int64  `mapstructure:"MAX_UPLOAD_BYTES"`

	AuthRateLimit       int           `mapstructure:"AUTH_RATE_LIMIT"`
	AuthRateLimitWindow time.Duration `mapstructure:"AUTH_RATE_LIMIT_WINDOW"`
}

var defaults = map[string]any{
	"PORT":                   "5001",
	"APP_NAME":               "findmypet",
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "text",
	"STORE_DRIVER":           "",
	"MONGODB_URI":            "",
	"MONGODB_DATABASE":       "findmypet",
	"DB_DSN":                 "",
	"JWT_SECRET_KEY":         "",
	"TOKEN_TTL":              "24h",
	"PINATA_JWT":             "",
	"PINATA_GATEWAY":         "",
	"PINATA_UPLOAD_URL":      "https://uploads.pinata.cloud",
	"PINATA_API_URL":         "https://api.pinata.cloud",
	"SIGNED_URL_TTL":         "1h",
	"PLACES_API_KEY":         "",
	"PLACES_BASE_URL":        "https://maps.googleapis.com",
	"BREED_MODEL_URL":        "",
	"DATABRICKS_TOKEN":       "",
	"REDIS_URL":              "",
	"CORS_ALLOWED_ORIGINS":   "*",
	"MAX_UPLOAD_BYTES":       10 << 20,
	"AUTH_RATE_LIMIT":        20,
	"AUTH_RATE_LIMIT_WINDOW": "1m",
}

// Load lee config.yml desde dir (si existe) y luego env vars, que tienen prioridad.
// dir vacío => directorio actual.
func Load(dir string) (*Config, error) {
	v := viper.New()
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.StoreDriver = resolveDriver(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveDriver(cfg Config) string {
	d := strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if d != "" {
		return d
	}
	switch {
	case strings.TrimSpace(cfg.MongoURI) != "":
		return DriverMongo
	case strings.TrimSpace(cfg.PostgresDSN) != "":
		return DriverPostgres
	default:
		return DriverMemory
	}
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverMongo:
		if strings.TrimSpace(c.MongoURI) == "" {
			return errors.New("config: MONGODB_URI is required for the mongo driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return errors.New("config: DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("config: JWT_SECRET_KEY is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be positive")
	}
	if c.SignedURLTTL <= 0 {
		return errors.New("config: SIGNED_URL_TTL must be positive")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("config: MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// AllowedOrigins separa CORS_ALLOWED_ORIGINS por comas.
func (c *Config) AllowedOrigins() []string {
	out := make([]string, 0)
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
