package testsupport

import (
	"context"
	"sort"
)

// CatalogStub is an in-memory stand-in for the remote catalog service.
type CatalogStub struct {
	Bodies map[string]string

	ListErr  error
	FetchErr error

	ListCalls  int
	FetchCalls int
	Fetched    [][]string
}

// NewCatalogStub builds a stub whose name list is the key set of bodies.
func NewCatalogStub(bodies map[string]string) *CatalogStub {
	return &CatalogStub{Bodies: bodies}
}

// ListNames returns the sorted key set of Bodies, or ListErr when set.
func (c *CatalogStub) ListNames(ctx context.Context) ([]string, error) {
	c.ListCalls++
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	names := make([]string, 0, len(c.Bodies))
	for name := range c.Bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// FetchBodies returns the bodies for the requested names, or FetchErr when
// set. Names the stub does not know are silently omitted, mirroring the real
// service's behavior of skipping unrecognized entries.
func (c *CatalogStub) FetchBodies(ctx context.Context, names []string) (map[string]string, error) {
	c.FetchCalls++
	c.Fetched = append(c.Fetched, append([]string(nil), names...))
	if c.FetchErr != nil {
		return nil, c.FetchErr
	}
	bodies := make(map[string]string, len(names))
	for _, name := range names {
		if body, ok := c.Bodies[name]; ok {
			bodies[name] = body
		}
	}
	return bodies, nil
}
