package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/budymann/OODesign/internal/cli"
	"github.com/budymann/OODesign/pkg/ufind"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(ufind.ExitPanic)
		}
	}()

	if os.Getenv("UFIND_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(ufind.ExitCodeForError(err))
	}
}
