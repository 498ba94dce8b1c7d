// Package catalog wraps the remote gitignore template service.
//
// Two endpoints are consumed: the list endpoint, which enumerates every
// template name the service knows, and the template endpoint, which returns
// the concatenated contents for a comma-joined set of names as JSON. All
// transport and parse failures wrap ErrFetch so callers can treat them as
// retryable without inspecting messages.
package catalog
