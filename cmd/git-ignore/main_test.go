package main

import (
	"errors"
	"fmt"
	"testing"

	"gitignore/internal/catalog"
	"gitignore/internal/resolve"
	"gitignore/internal/userconfig"
)

func TestExitCodeMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown template", &resolve.UnknownTemplateError{Names: []string{"nope"}}, exitUnknown},
		{"wrapped unknown", fmt.Errorf("get: %w", resolve.ErrUnknownTemplate), exitUnknown},
		{"name collision", fmt.Errorf("alias: %w", userconfig.ErrNameCollision), exitConfig},
		{"cyclic alias", fmt.Errorf("alias: %w", userconfig.ErrCyclicAlias), exitConfig},
		{"config exists", userconfig.ErrExists, exitConfig},
		{"fetch failure", fmt.Errorf("update: %w", catalog.ErrFetch), exitFetch},
		{"plain error", errors.New("boom"), exitFailure},
	}

	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Errorf("%s: expected exit %d, got %d", tc.name, tc.want, got)
		}
	}
}
