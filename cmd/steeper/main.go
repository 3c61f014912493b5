// Package main provides the steeper CLI: a tea-variety catalog over
// interchangeable backends (embedded SQLite or a remote REST endpoint).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/steepworks/steeper/pkg/types"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode classifies an error: bad input and missing rows are user
// errors, everything else (storage, transport) is a system error.
func exitCode(err error) int {
	var argErr *types.ArgumentError
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrEmptyName),
		errors.Is(err, types.ErrSteepTimeOutOfRange),
		errors.Is(err, types.ErrSteepTimeParse),
		errors.Is(err, types.ErrLastVariety),
		errors.As(err, &argErr):
		return exitUserError
	default:
		return exitSysError
	}
}
