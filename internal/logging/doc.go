// Package logging builds the slog loggers used across git-ignore.
//
// The CLI constructs one logger from the --log-level flag and hands component
// loggers to the cache store and user config. Store operations log at debug
// level only; anything the user must act on is returned as an error and
// rendered by the command layer instead.
package logging
