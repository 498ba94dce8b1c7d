package detect_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gitignore/internal/detect"
)

type fakeEntry struct {
	name   string
	ext    string
	isFile bool
}

func (e fakeEntry) Name() string { return e.name }
func (e fakeEntry) Ext() string  { return e.ext }
func (e fakeEntry) IsFile() bool { return e.isFile }

func detectOne(t *testing.T, entry fakeEntry) []string {
	t.Helper()
	return detect.Detect([]detect.Entry{entry})
}

func TestDetectsMarkerFiles(t *testing.T) {
	t.Parallel()

	cases := []struct {
		entry fakeEntry
		want  string
	}{
		{fakeEntry{"build.gradle", "gradle", true}, "java"},
		{fakeEntry{"pom.xml", "xml", true}, "java"},
		{fakeEntry{"package.json", "json", true}, "node"},
		{fakeEntry{"requirements.txt", "txt", true}, "python"},
		{fakeEntry{"git-ignore.cabal", "cabal", true}, "haskell"},
		{fakeEntry{"stack.yaml", "yaml", true}, "haskell"},
		{fakeEntry{"composer.json", "json", true}, "php"},
		{fakeEntry{"git-ignore.gemspec", "gemspec", true}, "ruby"},
		{fakeEntry{"Gemfile", "", true}, "ruby"},
		{fakeEntry{"Cargo.toml", "toml", true}, "rust"},
		{fakeEntry{"go.mod", "mod", true}, "go"},
	}

	for _, tc := range cases {
		if got := detectOne(t, tc.entry); !reflect.DeepEqual(got, []string{tc.want}) {
			t.Fatalf("entry %s: expected [%s], got %v", tc.entry.name, tc.want, got)
		}
	}
}

func TestIgnoresDirectoriesAndUnknownFiles(t *testing.T) {
	t.Parallel()

	entries := []detect.Entry{
		fakeEntry{"package.json", "json", false}, // directory named like a marker
		fakeEntry{"README.md", "md", true},
	}
	if got := detect.Detect(entries); len(got) != 0 {
		t.Fatalf("expected no detections, got %v", got)
	}
}

func TestDetectMultipleStableOrder(t *testing.T) {
	t.Parallel()

	entries := []detect.Entry{
		fakeEntry{"Cargo.toml", "toml", true},
		fakeEntry{"package.json", "json", true},
		fakeEntry{"go.mod", "mod", true},
	}
	want := []string{"go", "node", "rust"}
	if got := detect.Detect(entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFromDirReadsRealEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module demo\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "package.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := detect.FromDir(dir)
	if err != nil {
		t.Fatalf("FromDir: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"go"}) {
		t.Fatalf("expected [go], got %v", got)
	}
}
