package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "./configs/config.yaml"

type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Polling   PollingConfig   `yaml:"polling"`
	Logging   LoggingConfig   `yaml:"logging"`
	Storage   StorageConfig   `yaml:"storage"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Security  SecurityConfig  `yaml:"security"`
}

type TelegramConfig struct {
	Token string `yaml:"token"`
	// Username is the bot's username without the @. Filled from getMe when
	// empty.
	Username       string        `yaml:"username"`
	APIEndpoint    string        `yaml:"api_endpoint"`
	Timeout        time.Duration `yaml:"timeout"`
	Debug          bool          `yaml:"debug"`
	AllowedUpdates []string      `yaml:"allowed_updates"`
}

type PollingConfig struct {
	Timeout int `yaml:"timeout"`
	Limit   int `yaml:"limit"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type StorageConfig struct {
	DBPath        string        `yaml:"db_path"`
	Retention     time.Duration `yaml:"retention"`
	PruneInterval time.Duration `yaml:"prune_interval"`
}

type RateLimitConfig struct {
	Limit  int           `yaml:"limit"`
	Window time.Duration `yaml:"window"`
}

type SecurityConfig struct {
	SecretPatterns []string `yaml:"secret_patterns"`
}

// Load reads the file named by CONFIG_PATH, or DefaultPath.
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultPath
	}
	return LoadFile(configPath)
}

func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables
	content := expandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Telegram.Timeout == 0 {
		c.Telegram.Timeout = 90 * time.Second
	}
	if c.Polling.Timeout == 0 {
		c.Polling.Timeout = 60
	}
	if c.Polling.Limit == 0 {
		c.Polling.Limit = 100
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Storage.Retention == 0 {
		c.Storage.Retention = 7 * 24 * time.Hour
	}
	if c.Storage.PruneInterval == 0 {
		c.Storage.PruneInterval = time.Hour
	}
	if c.RateLimit.Limit == 0 {
		c.RateLimit.Limit = 20
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = time.Minute
	}
}

func (c *Config) validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if c.Telegram.APIEndpoint != "" && strings.Count(c.Telegram.APIEndpoint, "%s") != 2 {
		return fmt.Errorf("telegram.api_endpoint must contain two %%s placeholders (token and method)")
	}
	if c.Telegram.Timeout < 0 {
		return fmt.Errorf("telegram.timeout must not be negative")
	}
	if c.Polling.Timeout < 0 {
		return fmt.Errorf("polling.timeout must not be negative")
	}
	if c.Polling.Limit < 1 || c.Polling.Limit > 100 {
		return fmt.Errorf("polling.limit must be between 1 and 100")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json")
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}
	if c.Storage.Retention < 0 {
		return fmt.Errorf("storage.retention must not be negative")
	}
	if c.Storage.PruneInterval <= 0 {
		return fmt.Errorf("storage.prune_interval must be positive")
	}
	if c.RateLimit.Limit < 0 {
		return fmt.Errorf("rate_limit.limit must not be negative")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive")
	}
	return nil
}

func expandEnv(s string) string {
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}

func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Configuration:\n")
	sb.WriteString(fmt.Sprintf("  Telegram Token: %s\n", maskSecret(c.Telegram.Token)))
	sb.WriteString(fmt.Sprintf("  Telegram Username: %s\n", c.Telegram.Username))
	sb.WriteString(fmt.Sprintf("  Telegram Timeout: %s\n", c.Telegram.Timeout))
	sb.WriteString(fmt.Sprintf("  Allowed Updates: %s\n", strings.Join(c.Telegram.AllowedUpdates, ",")))
	sb.WriteString(fmt.Sprintf("  Polling Timeout: %ds\n", c.Polling.Timeout))
	sb.WriteString(fmt.Sprintf("  Polling Limit: %d\n", c.Polling.Limit))
	sb.WriteString(fmt.Sprintf("  Log Level: %s (%s)\n", c.Logging.Level, c.Logging.Format))
	sb.WriteString(fmt.Sprintf("  Storage DB Path: %s\n", c.Storage.DBPath))
	sb.WriteString(fmt.Sprintf("  Journal Retention: %s\n", c.Storage.Retention))
	sb.WriteString(fmt.Sprintf("  Rate Limit: %d per %s\n", c.RateLimit.Limit, c.RateLimit.Window))
	return sb.String()
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "***"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
