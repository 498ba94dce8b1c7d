package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"gitignore/internal/detect"
)

// withDetected appends templates detected from the current directory when
// auto is set. Detected names join the user's explicit arguments; duplicates
// are left to the resolver, which treats repeated list queries as one match.
func withDetected(args []string, auto bool) ([]string, error) {
	if !auto {
		return args, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	detected, err := detect.FromDir(wd)
	if err != nil {
		return nil, err
	}
	return append(append([]string(nil), args...), detected...), nil
}

// isTTY reports whether w is an interactive terminal. Buffered writers in
// tests and piped output both get plain rendering.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
