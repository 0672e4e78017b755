package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/emploader/pkg/emploader"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_MissingArguments(t *testing.T) {
	_, err := executeRoot(t, "localhost", "5432")
	require.Error(t, err)
	assert.ErrorIs(t, err, emploader.ErrInvalidArguments)
	assert.Equal(t, emploader.ExitUsageError, emploader.ExitCodeForError(err))
}

func TestRootCommand_UnknownFlag(t *testing.T) {
	_, err := executeRoot(t, "--no-such-flag")
	require.Error(t, err)
	assert.Equal(t, emploader.ExitUsageError, emploader.ExitCodeForError(err))
}

func TestRootCommand_InvalidPortIsUsageError(t *testing.T) {
	_, err := executeRoot(t, "localhost", "http", "company", "postgres", "secret", "employees.txt", "50000")
	require.Error(t, err)
	assert.ErrorIs(t, err, emploader.ErrInvalidArguments)
}

func TestRootCommand_HasFlags(t *testing.T) {
	for _, name := range []string{"sslmode", "connect-timeout", "timeout", "config"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag --%s", name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func TestRootCommand_HasVersionSubcommand(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "version", cmd.Name())
}

func TestRootCommand_DashPrefixedPositionals(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"password starting with dash", []string{"localhost", "5432", "company", "postgres", "-s3cret", "employees.txt", "50000"}},
		{"negative threshold", []string{"localhost", "5432", "company", "postgres", "secret", "employees.txt", "-1"}},
		{"password that looks like a flag", []string{"localhost", "5432", "company", "postgres", "--timeout", "employees.txt", "50000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, rootCmd.ParseFlags(tt.args))
			assert.Equal(t, tt.args, rootCmd.Flags().Args())
			require.NoError(t, RequireLoadArgs(rootCmd, rootCmd.Flags().Args()))

			pos, err := parsePositionalArgs(rootCmd.Flags().Args())
			require.NoError(t, err)
			assert.Equal(t, tt.args[4], pos.password)
		})
	}
}

func TestRootCommand_NegativeThresholdParsed(t *testing.T) {
	args := []string{"localhost", "5432", "company", "postgres", "secret", "employees.txt", "-1"}
	require.NoError(t, rootCmd.ParseFlags(args))

	pos, err := parsePositionalArgs(rootCmd.Flags().Args())
	require.NoError(t, err)
	assert.Equal(t, float32(-1), pos.salaryThreshold)
}

func TestRootCommand_FlagsBeforeHost(t *testing.T) {
	flags := &loadFlagValues{}
	cmd := &cobra.Command{Use: "emploader"}
	registerLoadFlags(cmd, flags)

	args := []string{"--sslmode", "disable", "localhost", "5432", "company", "postgres", "-s3cret", "employees.txt", "-1"}
	require.NoError(t, cmd.ParseFlags(args))

	assert.Equal(t, "disable", flags.sslMode)
	assert.Equal(t, args[2:], cmd.Flags().Args())
}
