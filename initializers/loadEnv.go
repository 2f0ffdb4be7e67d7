package initializers

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"PORT"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	DBDriver        string        `mapstructure:"DB_DRIVER"`
	DBDSN           string        `mapstructure:"DB_DSN"`
	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	JWTIssuer       string        `mapstructure:"JWT_ISSUER"`
	JWTAudience     string        `mapstructure:"JWT_AUDIENCE"`
	JWTTTL          time.Duration `mapstructure:"JWT_TTL"`
	CORSOrigins     string        `mapstructure:"CORS_ORIGINS"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	LoginRateLimit  int           `mapstructure:"LOGIN_RATE_LIMIT"`
	LoginRateWindow time.Duration `mapstructure:"LOGIN_RATE_WINDOW"`
	S3Bucket        string        `mapstructure:"AWS_S3_BUCKET"`
}

var defaults = map[string]any{
	"PORT":              "8080",
	"GIN_MODE":          "debug",
	"LOG_LEVEL":         "info",
	"DB_DRIVER":         "mysql",
	"DB_DSN":            "",
	"JWT_SECRET":        "",
	"JWT_ISSUER":        "vastra-api",
	"JWT_AUDIENCE":      "vastra-clients",
	"JWT_TTL":           "168h",
	"CORS_ORIGINS":      "http://localhost:4200",
	"REDIS_ADDR":        "",
	"REDIS_PASSWORD":    "",
	"LOGIN_RATE_LIMIT":  10,
	"LOGIN_RATE_WINDOW": "1m",
	"AWS_S3_BUCKET":     "",
}

// LoadEnv reads .env into the process environment when the file exists.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}

// LoadConfig builds the Config from environment variables over defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
