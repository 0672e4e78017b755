package emploader

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// LoadConfig contains all parameters needed for one load run.
type LoadConfig struct {
	// Connection identifies the target database
	Connection ConnectionConfig

	// InputPath is the employee file: one eid,ename,age,salary record per line
	InputPath string

	// SalaryThreshold is passed to getnames(minsalary real)
	SalaryThreshold float32

	// Timeout is the global timeout for the entire run
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if err := c.Connection.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.InputPath == "" {
		errs = append(errs, fmt.Errorf("InputPath is required: %w", ErrInvalidConfig))
	}

	threshold := float64(c.SalaryThreshold)
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		errs = append(errs, fmt.Errorf("SalaryThreshold must be finite: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConnectionConfig represents parsed connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// Additional connection parameters
	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string
}

// Validate checks the fields a connection cannot be opened without.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, fmt.Errorf("Host is required: %w", ErrInvalidConfig))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("Port %d is out of range 1-65535: %w", c.Port, ErrInvalidConfig))
	}
	if c.Database == "" {
		errs = append(errs, fmt.Errorf("Database is required: %w", ErrInvalidConfig))
	}
	if c.Username == "" {
		errs = append(errs, fmt.Errorf("Username is required: %w", ErrInvalidConfig))
	}
	if c.ConnectTimeout < 0 {
		errs = append(errs, fmt.Errorf("connect timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// LoadStats summarizes a finished run.
type LoadStats struct {
	Inserted int // rows inserted into emp
	Printed  int // names written by the getnames report
}
