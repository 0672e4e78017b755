package emploader_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vvka-141/emploader/pkg/emploader"
)

func validConnection() emploader.ConnectionConfig {
	return emploader.ConnectionConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "company",
		Username: "postgres",
	}
}

func TestLoadConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *emploader.LoadConfig)
		wantError bool
	}{
		{"valid config", func(c *emploader.LoadConfig) {}, false},
		{"zero threshold is valid", func(c *emploader.LoadConfig) { c.SalaryThreshold = 0 }, false},
		{"missing input path", func(c *emploader.LoadConfig) { c.InputPath = "" }, true},
		{"missing host", func(c *emploader.LoadConfig) { c.Connection.Host = "" }, true},
		{"port zero", func(c *emploader.LoadConfig) { c.Connection.Port = 0 }, true},
		{"port too large", func(c *emploader.LoadConfig) { c.Connection.Port = 70000 }, true},
		{"missing database", func(c *emploader.LoadConfig) { c.Connection.Database = "" }, true},
		{"missing username", func(c *emploader.LoadConfig) { c.Connection.Username = "" }, true},
		{"negative timeout", func(c *emploader.LoadConfig) { c.Timeout = -time.Second }, true},
		{"negative connect timeout", func(c *emploader.LoadConfig) { c.Connection.ConnectTimeout = -time.Second }, true},
		{"NaN threshold", func(c *emploader.LoadConfig) { c.SalaryThreshold = float32(math.NaN()) }, true},
		{"infinite threshold", func(c *emploader.LoadConfig) { c.SalaryThreshold = float32(math.Inf(1)) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := emploader.LoadConfig{
				Connection:      validConnection(),
				InputPath:       "employees.txt",
				SalaryThreshold: 50000,
				Timeout:         time.Minute,
			}
			tt.mutate(&config)

			err := config.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !errors.Is(err, emploader.ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestLoadConfig_Validate_ReportsAllProblems(t *testing.T) {
	config := emploader.LoadConfig{}

	err := config.Validate()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	for _, want := range []string{"Host is required", "Database is required", "Username is required", "InputPath is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %q, got: %v", want, err)
		}
	}
}
