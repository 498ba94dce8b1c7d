package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestListNamesParsesRowsAndSorts(t *testing.T) {
	t.Parallel()

	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		if r.URL.Path != "/api/list" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("rust,node\ngo,ada\nnode\n"))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL + "/api"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	names, err := client.ListNames(context.Background())
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}

	want := []string{"ada", "go", "node", "rust"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	if captured == nil {
		t.Fatal("expected request to be captured")
	}
	if ua := captured.Header.Get("User-Agent"); ua != "git-ignore" {
		t.Fatalf("expected default user agent, got %q", ua)
	}
}

func TestListNamesEmptyResponseIsFetchError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("\n\n"))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := client.ListNames(context.Background()); !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestFetchBodiesBuildsRequestAndParsesJSON(t *testing.T) {
	t.Parallel()

	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		_, _ = w.Write([]byte(`{
			"rust": {"key": "rust", "name": "Rust", "fileName": "Rust.gitignore", "contents": "target/\n"},
			"node": {"key": "node", "name": "Node", "fileName": "Node.gitignore", "contents": "node_modules/\n"}
		}`))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, UserAgent: "git-ignore/test"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	bodies, err := client.FetchBodies(context.Background(), []string{"rust", "node"})
	if err != nil {
		t.Fatalf("FetchBodies: %v", err)
	}

	if bodies["rust"] != "target/\n" || bodies["node"] != "node_modules/\n" {
		t.Fatalf("unexpected bodies: %#v", bodies)
	}
	if captured == nil {
		t.Fatal("expected request to be captured")
	}
	if captured.URL.Path != "/rust,node" {
		t.Fatalf("unexpected request path %q", captured.URL.Path)
	}
	if format := captured.URL.Query().Get("format"); format != "json" {
		t.Fatalf("expected format=json, got %q", format)
	}
}

func TestFetchBodiesEmptyNamesSkipsRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request for empty name set")
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	bodies, err := client.FetchBodies(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchBodies: %v", err)
	}
	if len(bodies) != 0 {
		t.Fatalf("expected empty map, got %#v", bodies)
	}
}

func TestErrorStatusWrapsErrFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := client.FetchBodies(context.Background(), []string{"rust"}); !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestFetchBodiesMalformedJSONIsFetchError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := client.FetchBodies(context.Background(), []string{"rust"}); !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}
