// Package userconfig persists user-defined aliases and custom templates.
//
// The config is a single human-editable TOML document. Aliases group other
// names (remote templates, custom templates, or further aliases) into an
// ordered list; custom templates carry their full body inline. Two invariants
// are enforced at write time so resolution never has to re-check them: a name
// is never both an alias and a custom template, and an alias can never reach
// itself through its members. Writes replace the whole file atomically.
package userconfig
