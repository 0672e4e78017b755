package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/emploader/internal/config"
	"github.com/vvka-141/emploader/pkg/emploader"
)

type loadFlagValues struct {
	sslMode        string
	connectTimeout time.Duration
	timeout        time.Duration
	configPath     string
}

func registerLoadFlags(cmd *cobra.Command, flags *loadFlagValues) {
	cmd.Flags().StringVar(&flags.sslMode, "sslmode", "",
		"SSL mode: disable|allow|prefer|require|verify-ca|verify-full\n"+
			"Precedence: --sslmode > emploader.yaml > $PGSSLMODE > prefer")
	cmd.Flags().DurationVar(&flags.connectTimeout, "connect-timeout", emploader.DefaultConnectTimeout,
		"Connection establishment timeout\n"+
			"Precedence: --connect-timeout > emploader.yaml > $PGCONNECT_TIMEOUT > 10s")

	// Timeout flag - catastrophic failure protection, not normal timeout control
	cmd.Flags().DurationVar(&flags.timeout, "timeout", emploader.DefaultTimeout,
		"Catastrophic failure protection timeout for the whole run (0 disables)\n"+
			"Examples: 30s, 5m, 1h30m")
	cmd.Flags().StringVar(&flags.configPath, "config", config.ConfigFileName,
		"Optional YAML file with connection settings and timeout")

	// Stop flag parsing at <host> so positionals may start with '-'.
	cmd.Flags().SetInterspersed(false)
}

// buildLoadConfig builds a LoadConfig from positional arguments, flags,
// emploader.yaml and the environment.
func buildLoadConfig(cmd *cobra.Command, args []string, flags loadFlagValues, verbose bool) (emploader.LoadConfig, error) {
	_ = godotenv.Load()

	pos, err := parsePositionalArgs(args)
	if err != nil {
		return emploader.LoadConfig{}, err
	}

	fileCfg, err := loadFileConfig(flags.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return emploader.LoadConfig{}, err
	}

	password := pos.password
	if password == emploader.PromptPassword {
		password, err = readPassword(fmt.Sprintf("Password for user %s: ", pos.username))
		if err != nil {
			return emploader.LoadConfig{}, err
		}
	}

	connConfig := emploader.ConnectionConfig{
		Host:             pos.host,
		Port:             pos.port,
		Database:         pos.database,
		Username:         pos.username,
		Password:         password,
		AdditionalParams: map[string]string{},
	}

	connConfig.SSLMode = resolveSSLMode(cmd, flags, fileCfg)

	connConfig.ConnectTimeout, err = resolveConnectTimeout(cmd, flags, fileCfg)
	if err != nil {
		return emploader.LoadConfig{}, err
	}

	timeout, err := resolveTimeout(cmd, flags, fileCfg)
	if err != nil {
		return emploader.LoadConfig{}, err
	}

	if fileCfg != nil {
		connConfig.AppName = fileCfg.Connection.ApplicationName
		for k, v := range fileCfg.Connection.Params {
			connConfig.AdditionalParams[k] = v
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Connection resolved:\n")
		fmt.Fprintf(os.Stderr, "  Host: %s\n", connConfig.Host)
		fmt.Fprintf(os.Stderr, "  Port: %d\n", connConfig.Port)
		fmt.Fprintf(os.Stderr, "  User: %s\n", connConfig.Username)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", connConfig.Database)
		fmt.Fprintf(os.Stderr, "  SSL Mode: %s\n", connConfig.SSLMode)
		fmt.Fprintf(os.Stderr, "  Connect Timeout: %s\n", connConfig.ConnectTimeout)
	}

	return emploader.LoadConfig{
		Connection:      connConfig,
		InputPath:       pos.inputPath,
		SalaryThreshold: pos.salaryThreshold,
		Timeout:         timeout,
		Verbose:         verbose,
	}, nil
}

// loadFileConfig returns nil when the default config file does not exist.
// A missing file named explicitly with --config is an error.
func loadFileConfig(path string, explicit bool) (*config.FileConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to load %s: %w", emploader.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

func resolveSSLMode(cmd *cobra.Command, flags loadFlagValues, fileCfg *config.FileConfig) string {
	if cmd.Flags().Changed("sslmode") {
		return flags.sslMode
	}
	if fileCfg != nil && fileCfg.Connection.SSLMode != "" {
		return fileCfg.Connection.SSLMode
	}
	if env := os.Getenv("PGSSLMODE"); env != "" {
		return env
	}
	return emploader.DefaultSSLMode
}

func resolveConnectTimeout(cmd *cobra.Command, flags loadFlagValues, fileCfg *config.FileConfig) (time.Duration, error) {
	if cmd.Flags().Changed("connect-timeout") {
		return flags.connectTimeout, nil
	}
	if fileCfg != nil && fileCfg.Connection.ConnectTimeout != "" {
		d, err := fileCfg.ConnectTimeoutDuration()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", emploader.ErrInvalidConfig, err)
		}
		return d, nil
	}
	if env := os.Getenv("PGCONNECT_TIMEOUT"); env != "" {
		seconds, err := strconv.Atoi(env)
		if err != nil || seconds < 0 {
			return 0, fmt.Errorf("%w: invalid PGCONNECT_TIMEOUT %q: must be a non-negative number of seconds", emploader.ErrInvalidConfig, env)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	return flags.connectTimeout, nil
}

// resolveTimeout returns the effective timeout, preferring emploader.yaml if the flag wasn't set.
func resolveTimeout(cmd *cobra.Command, flags loadFlagValues, fileCfg *config.FileConfig) (time.Duration, error) {
	if fileCfg != nil && fileCfg.Timeout != "" && !cmd.Flags().Changed("timeout") {
		d, err := fileCfg.TimeoutDuration()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", emploader.ErrInvalidConfig, err)
		}
		return d, nil
	}
	return flags.timeout, nil
}
