package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const envPrefix = "VOLUMEPLANNER_"

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// redis; an empty host disables the shared plan cache and rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// plans
	PlanCacheSizeMB            int      `toml:"plan_cache_size_mb"`
	PlanCacheTTLSeconds        int      `toml:"plan_cache_ttl_seconds"`
	PlanRateLimitAllowedPerMin int      `toml:"plan_rate_limit_allowed_per_min"`
	AllowedOrigins             []string `toml:"allowed_origins"`
	MCPEnabled                 bool     `toml:"mcp_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

var ErrMissingEnvConfig = errors.New("no config for env")

// Load reads the TOML file, picks the table for env and applies VOLUMEPLANNER_* overrides.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnvConfig, env)
	}

	if err := cfg.applyEnvOverrides(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.setDefaults(env)

	return cfg, nil
}

func (c *Config) applyEnvOverrides(lookup func(string) (string, bool)) error {
	strOverrides := map[string]*string{
		"HOST":                    &c.Host,
		"LOG_LEVEL":               &c.LogLevel,
		"LOGS_PATH":               &c.LogsPath,
		"REDIS_HOST":              &c.RedisHost,
		"REDIS_PORT":              &c.RedisPort,
		"PROMETHEUS_METRICS_HOST": &c.PrometheusMetricsHost,
		"PROMETHEUS_METRICS_PORT": &c.PrometheusMetricsPort,
	}
	for name, field := range strOverrides {
		if v, ok := lookup(envPrefix + name); ok {
			*field = v
		}
	}

	intOverrides := map[string]*int{
		"PORT":                            &c.Port,
		"PLAN_CACHE_SIZE_MB":              &c.PlanCacheSizeMB,
		"PLAN_CACHE_TTL_SECONDS":          &c.PlanCacheTTLSeconds,
		"PLAN_RATE_LIMIT_ALLOWED_PER_MIN": &c.PlanRateLimitAllowedPerMin,
	}
	for name, field := range intOverrides {
		v, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %s%s: %w", envPrefix, name, err)
		}
		*field = parsed
	}

	if v, ok := lookup(envPrefix + "ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, origin)
			}
		}
	}

	return nil
}

func (c *Config) setDefaults(env string) {
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9100
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.PlanCacheSizeMB <= 0 {
		c.PlanCacheSizeMB = 16
	}
	if c.PlanCacheTTLSeconds <= 0 {
		c.PlanCacheTTLSeconds = 3600
	}
}
