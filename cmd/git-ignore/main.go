package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gitignore/internal/catalog"
	"gitignore/internal/resolve"
	"gitignore/internal/userconfig"
)

const (
	exitFailure = 1
	exitUnknown = 2
	exitConfig  = 3
	exitFetch   = 4
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps error classes to distinct exit statuses so scripts can tell
// a typo'd template name from an unreachable catalog.
func exitCode(err error) int {
	switch {
	case errors.Is(err, resolve.ErrUnknownTemplate):
		return exitUnknown
	case errors.Is(err, userconfig.ErrNameCollision),
		errors.Is(err, userconfig.ErrCyclicAlias),
		errors.Is(err, userconfig.ErrExists):
		return exitConfig
	case errors.Is(err, catalog.ErrFetch):
		return exitFetch
	default:
		return exitFailure
	}
}
