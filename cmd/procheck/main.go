package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/ktsuji/procheck/internal/cli"
	"github.com/ktsuji/procheck/pkg/procheck"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(procheck.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(procheck.ExitCodeForError(err))
	}
}
