// Package detect guesses applicable gitignore templates from the files in a
// project directory, driving the --auto flag on list and get.
package detect
