package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"ourlove/lovetime"
	"ourlove/storage"
	"ourlove/youtube"
)

const ConfigEnvVar = "OURLOVE_CONFIG"

// Config holds all ourlove configuration.
type Config struct {
	SiteName string `yaml:"site_name"`

	Love    LoveConfig    `yaml:"love"`
	Server  ServerConfig  `yaml:"server"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Diary   DiaryConfig   `yaml:"diary"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoveConfig configures the counter.
type LoveConfig struct {
	Reference    string `yaml:"reference"` // ISO 8601, local time unless an offset is given
	PartnerName  string `yaml:"partner_name"`
	Tagline      string `yaml:"tagline"`
	TickInterval string `yaml:"tick_interval"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// YouTubeConfig configures the YouTube proxy.
type YouTubeConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Timeout    string `yaml:"timeout"`
	RegionCode string `yaml:"region_code"`
}

// DiaryConfig configures diary storage.
type DiaryConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// ValidLogLevels lists accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SiteName: "Our Love Universe ♡",
		Love: LoveConfig{
			Reference:    lovetime.DefaultReference,
			PartnerName:  "My Beautiful Universe",
			Tagline:      "Every click brings us closer ♡",
			TickInterval: "1s",
		},
		Server: ServerConfig{
			Addr:            ":5000",
			ShutdownTimeout: "5s",
		},
		YouTube: YouTubeConfig{
			BaseURL:    youtube.DefaultBaseURL,
			Timeout:    "10s",
			RegionCode: youtube.DefaultRegionCode,
		},
		Diary: DiaryConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath returns the config file path from environment variable
// or defaults to ~/.ourlove/config.yaml.
func DefaultPath() string {
	if v := os.Getenv(ConfigEnvVar); v != "" {
		return filepath.Clean(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ourlove/config.yaml"
	}
	return filepath.Join(home, ".ourlove", "config.yaml")
}

// Load loads configuration from a YAML file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		c.YouTube.APIKey = key
	}
	if ref := os.Getenv("OURLOVE_REFERENCE"); ref != "" {
		c.Love.Reference = ref
	}
	if path := os.Getenv(storage.DiaryEnvVar); path != "" {
		c.Diary.Path = path
	}
	if level := os.Getenv("OURLOVE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks the configuration for values that would fail at startup.
// A missing YouTube API key is allowed: search then serves demo data.
func (c *Config) Validate() error {
	if _, err := c.ReferenceTime(); err != nil {
		return err
	}
	if d, err := c.TickInterval(); err != nil {
		return err
	} else if d <= 0 {
		return fmt.Errorf("love.tick_interval must be positive, got %s", c.Love.TickInterval)
	}
	if _, err := c.ShutdownTimeout(); err != nil {
		return err
	}
	if _, err := c.YouTubeTimeout(); err != nil {
		return err
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if strings.EqualFold(c.Logging.Level, l) {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if f := c.Logging.Format; f != "json" && f != "console" {
		return fmt.Errorf("invalid logging format: %s (valid: json, console)", f)
	}

	return nil
}

// ReferenceTime parses the counter's reference instant in local time.
func (c *Config) ReferenceTime() (time.Time, error) {
	return lovetime.ParseReference(c.Love.Reference, time.Local)
}

// TickInterval returns the counter refresh interval.
func (c *Config) TickInterval() (time.Duration, error) {
	return parseDuration("love.tick_interval", c.Love.TickInterval, lovetime.DefaultTickInterval)
}

// ShutdownTimeout returns the server's graceful shutdown budget.
func (c *Config) ShutdownTimeout() (time.Duration, error) {
	return parseDuration("server.shutdown_timeout", c.Server.ShutdownTimeout, 5*time.Second)
}

// YouTubeTimeout returns the upstream request timeout.
func (c *Config) YouTubeTimeout() (time.Duration, error) {
	return parseDuration("youtube.timeout", c.YouTube.Timeout, youtube.DefaultTimeout)
}

func parseDuration(field, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return d, nil
}
