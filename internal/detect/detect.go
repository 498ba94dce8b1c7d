package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is the directory entry surface the detectors inspect. os.DirEntry is
// adapted via FromDir; tests provide fakes.
type Entry interface {
	Name() string
	Ext() string
	IsFile() bool
}

type matcherKind int

const (
	byFileName matcherKind = iota
	byExtension
)

type matcher struct {
	kind  matcherKind
	value string
}

func (m matcher) matches(entry Entry) bool {
	if !entry.IsFile() {
		return false
	}
	switch m.kind {
	case byExtension:
		return entry.Ext() == m.value
	default:
		return entry.Name() == m.value
	}
}

// Detector maps a set of marker files to one template name.
type Detector struct {
	Template string
	matchers []matcher
}

func (d Detector) detects(entries []Entry) bool {
	for _, m := range d.matchers {
		for _, entry := range entries {
			if m.matches(entry) {
				return true
			}
		}
	}
	return false
}

func fileName(name string) matcher { return matcher{kind: byFileName, value: name} }
func extension(ext string) matcher { return matcher{kind: byExtension, value: ext} }

// Defaults returns the built-in detector table. The marker files follow the
// project detection tables used by starship.
func Defaults() []Detector {
	return []Detector{
		{Template: "go", matchers: []matcher{fileName("go.mod")}},
		{Template: "haskell", matchers: []matcher{extension("cabal"), fileName("stack.yaml")}},
		{Template: "java", matchers: []matcher{fileName("build.gradle"), fileName("pom.xml")}},
		{Template: "node", matchers: []matcher{fileName("package.json")}},
		{Template: "php", matchers: []matcher{fileName("composer.json")}},
		{Template: "python", matchers: []matcher{fileName("requirements.txt")}},
		{Template: "ruby", matchers: []matcher{extension("gemspec"), fileName("Gemfile")}},
		{Template: "rust", matchers: []matcher{fileName("Cargo.toml")}},
	}
}

// Detect returns the template names whose markers appear among entries, in
// the stable order of the detector table.
func Detect(entries []Entry) []string {
	var templates []string
	for _, detector := range Defaults() {
		if detector.detects(entries) {
			templates = append(templates, detector.Template)
		}
	}
	return templates
}

// FromDir runs detection against the files directly inside dir.
func FromDir(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		entries = append(entries, osEntry{entry})
	}
	return Detect(entries), nil
}

type osEntry struct {
	entry os.DirEntry
}

func (e osEntry) Name() string { return e.entry.Name() }

func (e osEntry) Ext() string {
	ext := filepath.Ext(e.entry.Name())
	return strings.TrimPrefix(ext, ".")
}

func (e osEntry) IsFile() bool { return e.entry.Type().IsRegular() }
