// Package main hosts the git-ignore CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into catalog
// refreshes, template listing and retrieval, and alias/custom-template
// management against the two on-disk stores. It centralizes store loading,
// path resolution, and logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: resolution and persistence semantics belong in the
// internal packages; commands only parse flags and render results.
package main
