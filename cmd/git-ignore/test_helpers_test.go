package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// newCatalogServer serves the two endpoints of the remote catalog wire
// format: /list with comma-separated names and /<name,name>?format=json with
// a JSON object keyed by template name.
func newCatalogServer(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/list" {
			names := make([]string, 0, len(bodies))
			for name := range bodies {
				names = append(names, name)
			}
			sort.Strings(names)
			_, _ = w.Write([]byte(strings.Join(names, ",")))
			return
		}

		requested := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), ",")
		resp := make(map[string]map[string]string, len(requested))
		for _, name := range requested {
			body, ok := bodies[name]
			if !ok {
				continue
			}
			resp[name] = map[string]string{
				"key":      name,
				"name":     name,
				"fileName": name + ".gitignore",
				"contents": body,
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

type cliEnv struct {
	configPath string
	cachePath  string
	serverURL  string
}

func newCLIEnv(t *testing.T, serverURL string) *cliEnv {
	t.Helper()
	base := t.TempDir()
	return &cliEnv{
		configPath: filepath.Join(base, "config", "config.toml"),
		cachePath:  filepath.Join(base, "cache", "ignore.json"),
		serverURL:  serverURL,
	}
}

// run executes one CLI invocation with a fresh command tree, the way a real
// process would see it.
func (e *cliEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--config", e.configPath, "--cache", e.cachePath, "--server", e.serverURL}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
