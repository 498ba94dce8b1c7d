package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitignore/internal/logging"
)

// RemoteClient is the remote catalog surface the store consumes.
type RemoteClient interface {
	ListNames(ctx context.Context) ([]string, error)
	FetchBodies(ctx context.Context, names []string) (map[string]string, error)
}

// document is the persisted cache file layout.
type document struct {
	AllNames  []string          `json:"all_names"`
	Contents  map[string]string `json:"contents"`
	FetchedAt time.Time         `json:"fetched_at"`
}

// Store holds the last-known remote catalog state. The name list is
// authoritative for existence checks; contents caches bodies lazily. Every
// write replaces the whole file via temp-and-rename so a concurrent reader
// never sees a partial document.
type Store struct {
	path   string
	client RemoteClient
	logger *slog.Logger

	names     map[string]struct{}
	contents  map[string]string
	fetchedAt time.Time
}

// Open loads the cache file at path. A missing file yields an empty, fully
// usable store with a nil error. An unreadable or corrupt file also yields an
// empty usable store, but the load error is returned so the caller can warn;
// the broken file on disk is left alone until the next successful refresh.
func Open(path string, client RemoteClient, logger *slog.Logger) (*Store, error) {
	s := &Store{
		path:     path,
		client:   client,
		logger:   logging.NewComponentLogger(logger, "cachestore"),
		names:    make(map[string]struct{}),
		contents: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read cache file: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return s, fmt.Errorf("parse cache file: %w", err)
	}

	for _, name := range doc.AllNames {
		if name = strings.TrimSpace(name); name != "" {
			s.names[name] = struct{}{}
		}
	}
	for name, body := range doc.Contents {
		if _, ok := s.names[name]; ok {
			s.contents[name] = body
		}
	}
	s.fetchedAt = doc.FetchedAt

	s.logger.Debug("loaded template cache",
		logging.Int("name_count", len(s.names)),
		logging.Int("body_count", len(s.contents)),
		logging.String("path", path))

	return s, nil
}

// Refresh replaces the name list from the remote catalog, drops cached bodies
// whose name disappeared, stamps the fetch time, and persists. A fetch failure
// leaves both the in-memory state and the file untouched.
func (s *Store) Refresh(ctx context.Context) error {
	names, err := s.client.ListNames(ctx)
	if err != nil {
		return err
	}

	fresh := make(map[string]struct{}, len(names))
	for _, name := range names {
		fresh[name] = struct{}{}
	}

	contents := make(map[string]string, len(s.contents))
	for name, body := range s.contents {
		if _, ok := fresh[name]; ok {
			contents[name] = body
		}
	}

	s.names = fresh
	s.contents = contents
	s.fetchedAt = time.Now().UTC()

	if err := s.save(); err != nil {
		return fmt.Errorf("persist cache: %w", err)
	}

	s.logger.Debug("refreshed template cache",
		logging.Int("name_count", len(s.names)),
		logging.Int("body_count", len(s.contents)))

	return nil
}

// EnsureBodies bulk-fetches the bodies absent from the cache for every
// requested name the catalog knows. Names outside the catalog are returned as
// unknown and never sent to the remote. The store persists only when new
// bodies were merged; a fetch failure leaves everything untouched.
func (s *Store) EnsureBodies(ctx context.Context, names []string) ([]string, error) {
	var unknown, missing []string
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := s.names[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		if _, ok := s.contents[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(unknown)

	if len(missing) == 0 {
		return unknown, nil
	}

	bodies, err := s.client.FetchBodies(ctx, missing)
	if err != nil {
		return unknown, err
	}

	merged := 0
	for name, body := range bodies {
		if _, ok := s.names[name]; ok {
			s.contents[name] = body
			merged++
		}
	}
	if merged > 0 {
		if err := s.save(); err != nil {
			return unknown, fmt.Errorf("persist cache: %w", err)
		}
	}

	s.logger.Debug("fetched template bodies",
		logging.Int("requested", len(missing)),
		logging.Int("merged", merged))

	return unknown, nil
}

// Names returns every catalog name, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the catalog knows name.
func (s *Store) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Content returns the cached body for name, if present.
func (s *Store) Content(name string) (string, bool) {
	body, ok := s.contents[name]
	return body, ok
}

// FetchedAt returns the time of the last successful refresh, zero if never.
func (s *Store) FetchedAt() time.Time {
	return s.fetchedAt
}

// Len returns the number of catalog names.
func (s *Store) Len() int {
	return len(s.names)
}

func (s *Store) save() error {
	doc := document{
		AllNames:  s.Names(),
		Contents:  s.contents,
		FetchedAt: s.fetchedAt,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	return writeFileAtomic(s.path, data, 0o644)
}

// writeFileAtomic writes data to a uniquely named temp file in the target
// directory and renames it over path. Two racing invocations each rename a
// complete file; the later rename wins.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
