package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/emploader/internal/cli"
	"github.com/vvka-141/emploader/pkg/emploader"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(emploader.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(emploader.ExitCodeForError(err))
	}
}
