package resolve

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownTemplate marks an exact-match miss in get mode. Use errors.Is to
// detect it and errors.As with *UnknownTemplateError to read the names.
var ErrUnknownTemplate = errors.New("unknown template")

// UnknownTemplateError carries every requested name that matched nothing.
type UnknownTemplateError struct {
	Names []string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template(s): %s", strings.Join(e.Names, ", "))
}

func (e *UnknownTemplateError) Unwrap() error { return ErrUnknownTemplate }

// Origin describes where a name comes from.
type Origin int

const (
	OriginRemote Origin = iota
	OriginCustom
	OriginAlias
)

func (o Origin) String() string {
	switch o {
	case OriginCustom:
		return "custom"
	case OriginAlias:
		return "alias"
	default:
		return "remote"
	}
}

// Entry is one name in a listing together with its origin.
type Entry struct {
	Name   string
	Origin Origin
}

// Catalog is the remote-backed half of the name universe.
type Catalog interface {
	Names() []string
	Has(name string) bool
	Content(name string) (string, bool)
	EnsureBodies(ctx context.Context, names []string) ([]string, error)
}

// Overrides is the user-defined half: aliases and custom templates.
type Overrides interface {
	AliasMembers(name string) ([]string, bool)
	TemplateContent(name string) (string, bool)
	AliasNames() []string
	TemplateNames() []string
}

// Resolver answers list and get queries over the merged name universe. It is
// stateless per call; everything it knows lives in the two injected stores.
type Resolver struct {
	catalog   Catalog
	overrides Overrides
}

// New builds a Resolver. A nil overrides value behaves like an empty config.
func New(catalog Catalog, overrides Overrides) *Resolver {
	if overrides == nil {
		overrides = emptyOverrides{}
	}
	return &Resolver{catalog: catalog, overrides: overrides}
}

// List returns every universe name matching any query token as a literal
// prefix, deduplicated and sorted. An empty query matches everything. With
// simple set, user aliases and custom templates are excluded. Shadowed names
// report the origin that would win a get: alias over custom over remote.
func (r *Resolver) List(queries []string, simple bool) []Entry {
	catalogNames := r.catalog.Names()
	origins := make(map[string]Origin, len(catalogNames))
	for _, name := range catalogNames {
		origins[name] = OriginRemote
	}
	if !simple {
		for _, name := range r.overrides.TemplateNames() {
			origins[name] = OriginCustom
		}
		for _, name := range r.overrides.AliasNames() {
			origins[name] = OriginAlias
		}
	}

	entries := make([]Entry, 0, len(origins))
	for name, origin := range origins {
		if matchesAny(name, queries) {
			entries = append(entries, Entry{Name: name, Origin: origin})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func matchesAny(name string, queries []string) bool {
	if len(queries) == 0 {
		return true
	}
	for _, query := range queries {
		if strings.HasPrefix(name, query) {
			return true
		}
	}
	return false
}

// leaf is one resolved template occurrence in request order.
type leaf struct {
	name   string
	origin Origin
}

// Get assembles the template text for the requested names. Every name must
// exactly match an alias, custom template, or catalog name; any miss fails
// the whole call so partial output is never emitted. Aliases expand
// depth-first in declared member order, splicing into the request position.
// Duplicates are kept: a name requested or reachable twice is emitted twice,
// matching the remote service's non-deduplicating concatenation.
func (r *Resolver) Get(ctx context.Context, names []string, simple bool) (string, error) {
	var leaves []leaf
	var unknown []string
	for _, name := range names {
		r.expand(name, simple, &leaves, &unknown)
	}
	if len(unknown) > 0 {
		return "", &UnknownTemplateError{Names: dedupSorted(unknown)}
	}

	var remote []string
	for _, l := range leaves {
		if l.origin == OriginRemote {
			remote = append(remote, l.name)
		}
	}
	if missing, err := r.catalog.EnsureBodies(ctx, remote); err != nil {
		return "", err
	} else if len(missing) > 0 {
		return "", &UnknownTemplateError{Names: dedupSorted(missing)}
	}

	var out strings.Builder
	for _, l := range leaves {
		var body string
		switch l.origin {
		case OriginCustom:
			content, ok := r.overrides.TemplateContent(l.name)
			if !ok {
				return "", fmt.Errorf("custom template %q vanished during resolution", l.name)
			}
			body = content
		default:
			content, ok := r.catalog.Content(l.name)
			if !ok {
				return "", fmt.Errorf("no cached body for %q after fetch", l.name)
			}
			body = content
		}
		writeBlock(&out, l, body)
	}
	return out.String(), nil
}

// expand resolves one requested name into leaves. Alias cycles are precluded
// at add time, so the recursion needs no visited guard.
func (r *Resolver) expand(name string, simple bool, leaves *[]leaf, unknown *[]string) {
	if !simple {
		if members, ok := r.overrides.AliasMembers(name); ok {
			for _, member := range members {
				r.expand(member, simple, leaves, unknown)
			}
			return
		}
		if _, ok := r.overrides.TemplateContent(name); ok {
			*leaves = append(*leaves, leaf{name: name, origin: OriginCustom})
			return
		}
	}
	if r.catalog.Has(name) {
		*leaves = append(*leaves, leaf{name: name, origin: OriginRemote})
		return
	}
	*unknown = append(*unknown, name)
}

func writeBlock(out *strings.Builder, l leaf, body string) {
	if l.origin == OriginCustom {
		fmt.Fprintf(out, "### %s (custom) ###\n", l.name)
	} else {
		fmt.Fprintf(out, "### %s ###\n", l.name)
	}
	out.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		out.WriteByte('\n')
	}
	fmt.Fprintf(out, "### end %s ###\n\n", l.name)
}

func dedupSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

type emptyOverrides struct{}

func (emptyOverrides) AliasMembers(string) ([]string, bool)  { return nil, false }
func (emptyOverrides) TemplateContent(string) (string, bool) { return "", false }
func (emptyOverrides) AliasNames() []string                  { return nil }
func (emptyOverrides) TemplateNames() []string               { return nil }
