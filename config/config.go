package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHTTPAddress   = ":8080"
	DefaultLookupBaseURL = "https://api.adsbdb.com/v0"
	DefaultSQLitePath    = "preferences.db"
	DefaultKafkaGroupID  = "flighttracker-worker"
	DefaultLookupTopic   = "flight-lookups"
)

type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Lookup      LookupConfig      `yaml:"lookup"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	Cache       CacheConfig       `yaml:"cache"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Kafka       KafkaConfig       `yaml:"kafka"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type LookupConfig struct {
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds of 0 leaves the http.Client without a timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	RouteTTLSeconds int `yaml:"route_ttl_seconds"`
}

type PreferencesConfig struct {
	Driver     string `yaml:"driver"`
	SQLitePath string `yaml:"sqlite_path"`
}

type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	LookupEventsTopic string   `yaml:"lookup_events_topic"`
	GroupID           string   `yaml:"group_id"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	switch cfg.Preferences.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unknown preferences driver %q", cfg.Preferences.Driver)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = DefaultHTTPAddress
	}
	if c.Lookup.BaseURL == "" {
		c.Lookup.BaseURL = DefaultLookupBaseURL
	}
	if c.Preferences.Driver == "" {
		c.Preferences.Driver = "sqlite"
	}
	if c.Preferences.SQLitePath == "" {
		c.Preferences.SQLitePath = DefaultSQLitePath
	}
	if c.Kafka.LookupEventsTopic == "" {
		c.Kafka.LookupEventsTopic = DefaultLookupTopic
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = DefaultKafkaGroupID
	}
}

// RouteCacheEnabled reports whether route records should go through redis.
func (c *Config) RouteCacheEnabled() bool {
	return c.Redis.Addr != "" && c.Cache.RouteTTLSeconds > 0
}

func (c *Config) EventsEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}
