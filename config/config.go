// Package config loads the service configuration from a YAML file and USERDIR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ortelius/userdir-backend/util"
	"gopkg.in/yaml.v2"
)

// DefaultPath is read when no --config flag is given; a missing file is not an error
const DefaultPath = "userdir.yaml"

// Source kinds
const (
	SourceHTTP   = "http"
	SourceFile   = "file"
	SourceArango = "arangodb"
)

// Config is the full service configuration
type Config struct {
	ListenAddr     string        `yaml:"listen_addr" env:"USERDIR_LISTEN_ADDR"`
	Locale         string        `yaml:"locale" env:"USERDIR_LOCALE"`
	LogLevel       string        `yaml:"log_level" env:"USERDIR_LOG_LEVEL"`
	MinQueryLength int           `yaml:"min_query_length" env:"USERDIR_MIN_QUERY_LENGTH"`
	SettleDelay    time.Duration `yaml:"settle_delay" env:"USERDIR_SETTLE_DELAY"`
	AllowOrigins   string        `yaml:"allow_origins" env:"USERDIR_ALLOW_ORIGINS"`

	Source SourceConfig `yaml:"source" envPrefix:"USERDIR_SOURCE_"`
	Arango ArangoConfig `yaml:"arango" envPrefix:"USERDIR_ARANGO_"`
	Kafka  KafkaConfig  `yaml:"kafka" envPrefix:"USERDIR_KAFKA_"`
}

// SourceConfig selects and tunes the profile data source
type SourceConfig struct {
	Kind       string        `yaml:"kind" env:"KIND"`
	URL        string        `yaml:"url" env:"URL"`
	Path       string        `yaml:"path" env:"PATH"`
	Timeout    time.Duration `yaml:"timeout" env:"TIMEOUT"`
	MaxRetries uint64        `yaml:"max_retries" env:"MAX_RETRIES"`
}

// ArangoConfig holds the connection settings of the arangodb source
type ArangoConfig struct {
	URL        string `yaml:"url" env:"URL"`
	User       string `yaml:"user" env:"USER"`
	Pass       string `yaml:"pass" env:"PASS"`
	Database   string `yaml:"database" env:"DATABASE"`
	Collection string `yaml:"collection" env:"COLLECTION"`
}

// KafkaConfig enables the directory.loaded notification when Brokers is set
type KafkaConfig struct {
	Brokers []string `yaml:"brokers" env:"BROKERS" envSeparator:","`
	Topic   string   `yaml:"topic" env:"TOPIC"`
	// APIKey and APISecret switch the connection to SASL/PLAIN over TLS
	APIKey    string `yaml:"api_key" env:"API_KEY"`
	APISecret string `yaml:"api_secret" env:"API_SECRET"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		ListenAddr:     ":8080",
		Locale:         "pt-BR",
		LogLevel:       "info",
		MinQueryLength: 1,
		SettleDelay:    time.Second,
		AllowOrigins:   "http://localhost:3000,http://127.0.0.1:3000",
		Source: SourceConfig{
			Kind:       SourceHTTP,
			URL:        "http://localhost:3001/users",
			Timeout:    10 * time.Second,
			MaxRetries: 3,
		},
		Arango: ArangoConfig{
			URL:        "http://localhost:8529",
			User:       "root",
			Database:   "userdir",
			Collection: "profiles",
		},
		Kafka: KafkaConfig{
			Topic: "directory-events",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	default:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate ensures the configuration is usable
func (c Config) Validate() error {
	if _, err := util.ParseLocale(c.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	if c.MinQueryLength < 0 {
		return fmt.Errorf("min_query_length must not be negative")
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle_delay must not be negative")
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative")
	}

	switch c.Source.Kind {
	case SourceHTTP:
		if c.Source.URL == "" {
			return fmt.Errorf("source.url is required for the http source")
		}
	case SourceFile:
		if c.Source.Path == "" {
			return fmt.Errorf("source.path is required for the file source")
		}
	case SourceArango:
		if c.Arango.URL == "" || c.Arango.Database == "" || c.Arango.Collection == "" {
			return fmt.Errorf("arango.url, arango.database and arango.collection are required for the arangodb source")
		}
	default:
		return fmt.Errorf("unknown source.kind %q", c.Source.Kind)
	}

	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
	}
	return nil
}
