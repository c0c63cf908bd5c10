package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/delivtools/delivsync/internal/cli"
	"github.com/delivtools/delivsync/pkg/delivsync"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(delivsync.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(delivsync.ExitCodeForError(err))
	}
}
