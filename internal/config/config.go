package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Patient record sources.
const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
)

type Config struct {
	Port            string        `mapstructure:"PORT"`
	Env             string        `mapstructure:"ENV"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	CORSOrigins     []string      `mapstructure:"CORS_ORIGINS"`
	PatientSource   string        `mapstructure:"PATIENT_SOURCE"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	DBMaxConns      int32         `mapstructure:"DB_MAX_CONNS"`
	DBMinConns      int32         `mapstructure:"DB_MIN_CONNS"`
	RateLimitRPS    float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int           `mapstructure:"RATE_LIMIT_BURST"`
	BodyLimit       string        `mapstructure:"BODY_LIMIT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	QueryWorkers    int           `mapstructure:"QUERY_WORKERS"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "CORS_ORIGINS", "PATIENT_SOURCE",
	"DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "BODY_LIMIT",
	"SHUTDOWN_TIMEOUT", "QUERY_WORKERS",
}

// Load reads configuration from the environment, falling back to a .env
// file in the working directory and then to defaults. It does not validate.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("PATIENT_SOURCE", SourceStatic)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 1)
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("BODY_LIMIT", "64K")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("QUERY_WORKERS", 4)

	// Bind explicitly so Unmarshal sees env-only keys.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	// A missing .env is fine.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.CORSOrigins = splitOrigins(cfg.CORSOrigins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = splitOrigins([]string{v.GetString("CORS_ORIGINS")})
	}
	cfg.PatientSource = strings.ToLower(strings.TrimSpace(cfg.PatientSource))

	return cfg, nil
}

func splitOrigins(in []string) []string {
	var out []string
	for _, s := range in {
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Level parses LOG_LEVEL. Validate rejects values this cannot parse.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Validate checks that the configuration can start a server.
func (c *Config) Validate() error {
	switch c.PatientSource {
	case SourceStatic:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when PATIENT_SOURCE is %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("PATIENT_SOURCE must be %q or %q, got %q", SourceStatic, SourcePostgres, c.PatientSource)
	}

	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	if c.QueryWorkers < 1 {
		return fmt.Errorf("QUERY_WORKERS must be at least 1, got %d", c.QueryWorkers)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	return nil
}
