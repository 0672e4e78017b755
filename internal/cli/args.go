package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vvka-141/emploader/pkg/emploader"
)

// loadArgNames lists the positional arguments in order.
var loadArgNames = []string{
	"host", "port", "database", "username", "password", "input-file", "salary-threshold",
}

// positionalArgs holds the validated positional arguments.
type positionalArgs struct {
	host            string
	port            int
	database        string
	username        string
	password        string
	inputPath       string
	salaryThreshold float32
}

// RequireLoadArgs validates that exactly the seven positional arguments are provided.
// Returns a helpful error message with usage and an example when the count is wrong.
func RequireLoadArgs(cmd *cobra.Command, args []string) error {
	if len(args) < len(loadArgNames) {
		return fmt.Errorf(`%w: missing required argument: <%s>

Usage: %s

Example:
  %s localhost 5432 company postgres - employees.txt 50000`,
			emploader.ErrInvalidArguments, loadArgNames[len(args)], cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > len(loadArgNames) {
		return fmt.Errorf("%w: accepts %d arg(s), received %d",
			emploader.ErrInvalidArguments, len(loadArgNames), len(args))
	}
	return nil
}

// parsePositionalArgs converts the raw arguments. Call RequireLoadArgs first.
func parsePositionalArgs(args []string) (positionalArgs, error) {
	port, err := parsePort(args[1])
	if err != nil {
		return positionalArgs{}, err
	}

	threshold, err := parseSalaryThreshold(args[6])
	if err != nil {
		return positionalArgs{}, err
	}

	return positionalArgs{
		host:            args[0],
		port:            port,
		database:        args[2],
		username:        args[3],
		password:        args[4],
		inputPath:       args[5],
		salaryThreshold: threshold,
	}, nil
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid port %q: must be an integer", emploader.ErrInvalidArguments, s)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: invalid port %d: must be between 1 and 65535", emploader.ErrInvalidArguments, port)
	}
	return port, nil
}

// parseSalaryThreshold parses s as a 32-bit float, the precision of the
// real parameter getnames takes.
func parseSalaryThreshold(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid salary threshold %q: must be a number", emploader.ErrInvalidArguments, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: invalid salary threshold %q: must be finite", emploader.ErrInvalidArguments, s)
	}
	return float32(f), nil
}
