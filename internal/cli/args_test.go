package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/emploader/pkg/emploader"
)

func validArgs() []string {
	return []string{"localhost", "5432", "company", "postgres", "secret", "employees.txt", "50000"}
}

func TestRequireLoadArgs(t *testing.T) {
	cmd := &cobra.Command{
		Use: "emploader <host> <port> <database> <username> <password> <input-file> <salary-threshold>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireLoadArgs(cmd, []string{})
		require.Error(t, err)
		assert.ErrorIs(t, err, emploader.ErrInvalidArguments)
		assert.Contains(t, err.Error(), "missing required argument: <host>")
		assert.Contains(t, err.Error(), "Example:")
	})

	t.Run("names the first missing argument", func(t *testing.T) {
		err := RequireLoadArgs(cmd, validArgs()[:5])
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required argument: <input-file>")
	})

	t.Run("returns nil for exactly seven args", func(t *testing.T) {
		assert.NoError(t, RequireLoadArgs(cmd, validArgs()))
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireLoadArgs(cmd, append(validArgs(), "extra"))
		require.Error(t, err)
		assert.ErrorIs(t, err, emploader.ErrInvalidArguments)
		assert.Contains(t, err.Error(), "accepts 7 arg(s), received 8")
	})
}

func TestParsePositionalArgs(t *testing.T) {
	got, err := parsePositionalArgs(validArgs())
	require.NoError(t, err)

	assert.Equal(t, positionalArgs{
		host:            "localhost",
		port:            5432,
		database:        "company",
		username:        "postgres",
		password:        "secret",
		inputPath:       "employees.txt",
		salaryThreshold: 50000,
	}, got)
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"5432", 5432, false},
		{"1", 1, false},
		{"65535", 65535, false},
		{"0", 0, true},
		{"65536", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"54 32", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePort(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, emploader.ErrInvalidArguments)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSalaryThreshold(t *testing.T) {
	tests := []struct {
		in      string
		want    float32
		wantErr bool
	}{
		{"50000", 50000, false},
		{"50000.5", 50000.5, false},
		{"0", 0, false},
		{"-1", -1, false},
		{"1e6", 1e6, false},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"1e40", 0, true},
		{"fifty", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSalaryThreshold(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, emploader.ErrInvalidArguments)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
