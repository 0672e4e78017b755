package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConnectionConfig holds the connection settings positional arguments do not cover.
type ConnectionConfig struct {
	SSLMode         string            `yaml:"sslmode"`
	ConnectTimeout  string            `yaml:"connect_timeout"`
	ApplicationName string            `yaml:"application_name,omitempty"`
	Params          map[string]string `yaml:"params,omitempty"`
}

// FileConfig is the content of emploader.yaml.
type FileConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Timeout    string           `yaml:"timeout"`
}

const ConfigFileName = "emploader.yaml"

// Load reads and parses the config file at path.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TimeoutDuration parses Timeout. Zero means unset.
func (c *FileConfig) TimeoutDuration() (time.Duration, error) {
	return parseDuration("timeout", c.Timeout)
}

// ConnectTimeoutDuration parses Connection.ConnectTimeout. Zero means unset.
func (c *FileConfig) ConnectTimeoutDuration() (time.Duration, error) {
	return parseDuration("connection.connect_timeout", c.Connection.ConnectTimeout)
}

func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", field, value)
	}
	return d, nil
}
