package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://www.toptal.com/developers/gitignore/api"
	defaultUserAgent   = "git-ignore"
	defaultHTTPTimeout = 30 * time.Second
)

// ErrFetch marks any failure to reach or parse the remote catalog. Callers
// use errors.Is to distinguish transport trouble from local errors; a fetch
// failure never invalidates previously cached state.
var ErrFetch = errors.New("catalog fetch failed")

// Config describes the catalog client configuration.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client talks to a gitignore.io compatible template service.
type Client struct {
	baseURL   *url.URL
	userAgent string
	http      *http.Client
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse base url: %w", err)
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      client,
	}, nil
}

// ListNames fetches the full set of template names known to the service.
// The list endpoint responds with newline-separated rows of comma-separated
// names; both separators are accepted anywhere in the payload.
func (c *Client) ListNames(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, errors.New("catalog: client is nil")
	}
	body, err := c.get(ctx, c.baseURL.JoinPath("list"))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	names := make([]string, 0, 256)
	for _, row := range strings.FieldsFunc(string(body), func(r rune) bool {
		return r == '\n' || r == ','
	}) {
		name := strings.TrimSpace(row)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: list response contained no names", ErrFetch)
	}
	sort.Strings(names)
	return names, nil
}

// templateEntry mirrors one value of the JSON list response.
type templateEntry struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	FileName string `json:"fileName"`
	Contents string `json:"contents"`
}

// FetchBodies fetches the template contents for the given names in one
// request. The service ignores casing and ordering; the returned map is keyed
// by the names the service reports, which match catalog list names.
func (c *Client) FetchBodies(ctx context.Context, names []string) (map[string]string, error) {
	if c == nil {
		return nil, errors.New("catalog: client is nil")
	}
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	endpoint := c.baseURL.JoinPath(strings.Join(names, ","))
	query := endpoint.Query()
	query.Set("format", "json")
	endpoint.RawQuery = query.Encode()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var entries map[string]templateEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse template response: %v", ErrFetch, err)
	}

	bodies := make(map[string]string, len(entries))
	for name, entry := range entries {
		bodies[name] = entry.Contents
	}
	return bodies, nil
}

func (c *Client) get(ctx context.Context, endpoint *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/plain, application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetch, endpoint.Path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrFetch, err)
	}
	return body, nil
}
