// Package config loads and validates analyzer configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/JakeFAU/hackathon-analyzer/internal/discovery"
	"github.com/JakeFAU/hackathon-analyzer/internal/extract"
)

// EnvPrefix namespaces every environment override, e.g. ANALYZER_HTTP_TIMEOUT_SECONDS.
const EnvPrefix = "ANALYZER"

// DefaultUserAgent is sent on search and page requests.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Search   SearchConfig   `mapstructure:"search"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Extract  ExtractConfig  `mapstructure:"extract"`
	Headless HeadlessConfig `mapstructure:"headless"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Port                  int      `mapstructure:"port"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds"`
	CORSOrigins           []string `mapstructure:"cors_origins"`
}

// SearchConfig controls live discovery.
type SearchConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxResults     int    `mapstructure:"max_results"`
}

// HTTPConfig controls outbound page fetches.
type HTTPConfig struct {
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	UserAgent      string  `mapstructure:"user_agent"`
	RespectRobots  bool    `mapstructure:"respect_robots"`
	PerHostRPS     float64 `mapstructure:"per_host_rps"`
	PerHostBurst   int     `mapstructure:"per_host_burst"`
}

// ExtractConfig selects how page text is produced.
type ExtractConfig struct {
	Mode     string `mapstructure:"mode"`
	MaxChars int    `mapstructure:"max_chars"`
}

// HeadlessConfig configures optional chromedp rendering.
type HeadlessConfig struct {
	Enabled            bool `mapstructure:"enabled"`
	MaxParallel        int  `mapstructure:"max_parallel"`
	NavTimeoutSec      int  `mapstructure:"nav_timeout_seconds"`
	PromotionThreshold int  `mapstructure:"promotion_threshold"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

// Load builds a Config from defaults, an optional file and the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Hosting platforms inject PORT; the prefixed variable still wins.
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return Config{}, fmt.Errorf("bind port env: %w", err)
	}

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.request_timeout_seconds", 60)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("search.endpoint", "https://html.duckduckgo.com/html/")
	v.SetDefault("search.timeout_seconds", 10)
	v.SetDefault("search.max_results", 3)
	v.SetDefault("http.timeout_seconds", 15)
	v.SetDefault("http.user_agent", DefaultUserAgent)
	v.SetDefault("http.respect_robots", false)
	v.SetDefault("http.per_host_rps", 0)
	v.SetDefault("http.per_host_burst", 1)
	v.SetDefault("extract.mode", string(extract.ModeStrip))
	v.SetDefault("extract.max_chars", extract.DefaultMaxChars)
	v.SetDefault("headless.enabled", false)
	v.SetDefault("headless.max_parallel", 1)
	v.SetDefault("headless.nav_timeout_seconds", 25)
	v.SetDefault("headless.promotion_threshold", 2048)
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.level", "")
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Server.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("server.request_timeout_seconds must be > 0")
	}
	if c.Search.Endpoint == "" {
		return fmt.Errorf("search.endpoint must be set")
	}
	if c.Search.TimeoutSeconds <= 0 {
		return fmt.Errorf("search.timeout_seconds must be > 0")
	}
	if c.Search.MaxResults <= 0 || c.Search.MaxResults > discovery.MaxHits {
		return fmt.Errorf("search.max_results must be between 1 and %d", discovery.MaxHits)
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.HTTP.PerHostRPS < 0 {
		return fmt.Errorf("http.per_host_rps must be >= 0")
	}
	if _, err := extract.ParseMode(c.Extract.Mode); err != nil {
		return fmt.Errorf("extract.mode: %w", err)
	}
	if c.Extract.MaxChars <= 0 || c.Extract.MaxChars > extract.DefaultMaxChars {
		return fmt.Errorf("extract.max_chars must be between 1 and %d", extract.DefaultMaxChars)
	}
	if c.Headless.Enabled && c.Headless.MaxParallel <= 0 {
		return fmt.Errorf("headless.max_parallel must be > 0 when headless is enabled")
	}
	return nil
}

// SearchTimeout is the live discovery budget.
func (c Config) SearchTimeout() time.Duration {
	return time.Duration(c.Search.TimeoutSeconds) * time.Second
}

// FetchTimeout is the page acquisition budget.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// RequestTimeout bounds one API request.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}

// NavigationTimeout bounds one headless render.
func (c Config) NavigationTimeout() time.Duration {
	return time.Duration(c.Headless.NavTimeoutSec) * time.Second
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
