package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Cassandra CassandraConfig `yaml:"cassandra"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type CassandraConfig struct {
	Hosts          []string `yaml:"hosts"`
	Port           int      `yaml:"port"`
	Keyspace       string   `yaml:"keyspace,omitempty"`
	Username       string   `yaml:"username,omitempty"`
	Password       string   `yaml:"password,omitempty"`
	Consistency    string   `yaml:"consistency,omitempty"`
	ConnectTimeout int      `yaml:"connect_timeout,omitempty"` // seconds
	RequestTimeout int      `yaml:"request_timeout,omitempty"` // seconds
}

type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyDefaults()
	if err := config.Cassandra.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if len(c.Cassandra.Hosts) == 0 {
		c.Cassandra.Hosts = []string{"127.0.0.1"}
	}
	if c.Cassandra.Port == 0 {
		c.Cassandra.Port = 9042
	}
	if c.Cassandra.Consistency == "" {
		c.Cassandra.Consistency = "LOCAL_ONE"
	}
	if c.Cassandra.ConnectTimeout == 0 {
		c.Cassandra.ConnectTimeout = 10
	}
	if c.Cassandra.RequestTimeout == 0 {
		c.Cassandra.RequestTimeout = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}

func (c *CassandraConfig) Validate() error {
	if len(c.Hosts) == 0 {
		return fmt.Errorf("at least one cassandra host is required")
	}
	for _, h := range c.Hosts {
		if h == "" {
			return fmt.Errorf("cassandra host must not be empty")
		}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid cassandra port: %d", c.Port)
	}
	return nil
}
