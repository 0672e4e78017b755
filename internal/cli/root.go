package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/emploader/internal/db"
	"github.com/vvka-141/emploader/internal/logging"
	"github.com/vvka-141/emploader/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "emploader <host> <port> <database> <username> <password> <input-file> <salary-threshold>",
	Short: "Load employees into PostgreSQL and list the well paid ones",
	Long: `emploader connects to PostgreSQL, creates the emp, dept and works tables,
loads every line of <input-file> into emp, creates the getnames function and
prints the distinct names of employees earning at least <salary-threshold>,
one per line, in ascending order.

Input file format:
  One employee per line: eid,ename,age,salary
  Exactly four comma separated fields, no header, no quoting.
  Any malformed line aborts the load and no row of the file is kept.

Password:
  Pass - to be prompted on the terminal.
  Pass an empty string ("") to use $PGPASSWORD or ~/.pgpass.

Flags:
  Flags must come before <host>. Everything from <host> on is positional,
  so a password or a salary threshold may start with - (e.g. -1).

Configuration precedence:
  flag > emploader.yaml > environment ($PGSSLMODE, $PGCONNECT_TIMEOUT, .env) > default

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Database connection failed
  15 - Input file missing or unreadable
  16 - Malformed input line
  17 - Table creation failed (tables already exist)
  18 - Employee insert failed (duplicate eid)
  19 - getnames creation or call failed

Example:
  emploader localhost 5432 company postgres - employees.txt 50000`,
	Args:         RequireLoadArgs,
	RunE:         runLoad,
	SilenceUsage: true,
}

var loadFlags loadFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output on stderr")
	registerLoadFlags(rootCmd, &loadFlags)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func runLoad(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	config, err := buildLoadConfig(cmd, args, loadFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	loader := services.NewLoadService(db.NewConnector, logger, cmd.OutOrStdout())

	// Setup context with timeout and signal handling; cancellation rolls back the open batch
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), config.Timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, rolling back...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := loader.Load(ctx, config); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	return nil
}
