package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fyplab/fypml/internal/cli"
	"github.com/fyplab/fypml/pkg/fypml"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(fypml.ExitPanic)
		}
	}()

	if os.Getenv("FYPML_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(fypml.ExitCodeForError(err))
	}
}
