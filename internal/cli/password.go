package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vvka-141/emploader/pkg/emploader"
)

// readPassword prompts on stderr and reads a password from the terminal
// without echo. Replaced in tests.
var readPassword = promptPassword

func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: password %q requires an interactive terminal; use $PGPASSWORD or ~/.pgpass instead",
			emploader.ErrInvalidArguments, emploader.PromptPassword)
	}

	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(b), nil
}
