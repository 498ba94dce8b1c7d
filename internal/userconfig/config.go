package userconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"gitignore/internal/logging"
)

var (
	// ErrNameCollision marks an alias or template add that would reuse a name
	// already taken by the other kind, or by the same kind without overwrite.
	ErrNameCollision = errors.New("name collision")
	// ErrCyclicAlias marks an alias whose members would reach the alias
	// itself, directly or through other aliases.
	ErrCyclicAlias = errors.New("cyclic alias")
	// ErrExists is returned by Init when a config file is already present
	// and force was not requested.
	ErrExists = errors.New("config file already exists")
)

// document is the persisted TOML layout. The file is meant to be edited by
// hand, so it carries only plain string maps.
type document struct {
	Aliases   map[string][]string `toml:"aliases"`
	Templates map[string]string   `toml:"templates"`
}

// Config holds the user's aliases and custom templates.
type Config struct {
	path   string
	logger *slog.Logger

	aliases   map[string][]string
	templates map[string]string
}

// Load reads the config file at path. A missing file yields an empty config
// with a nil error; an unreadable or corrupt file yields an empty usable
// config plus the load error, and the file on disk is left alone.
func Load(path string, logger *slog.Logger) (*Config, error) {
	c := &Config{
		path:      path,
		logger:    logging.NewComponentLogger(logger, "userconfig"),
		aliases:   make(map[string][]string),
		templates: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("read config file: %w", err)
	}
	if len(data) == 0 {
		return c, nil
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return c, fmt.Errorf("parse config file: %w", err)
	}

	for name, members := range doc.Aliases {
		if name = strings.TrimSpace(name); name != "" {
			c.aliases[name] = members
		}
	}
	for name, content := range doc.Templates {
		if name = strings.TrimSpace(name); name != "" {
			c.templates[name] = content
		}
	}

	c.logger.Debug("loaded user config",
		logging.Int("alias_count", len(c.aliases)),
		logging.Int("template_count", len(c.templates)),
		logging.String("path", path))

	return c, nil
}

// Init creates an empty config file at path. An existing file is an error
// unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("%w at %s", ErrExists, path)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check config path: %w", err)
	}

	c := &Config{
		path:      path,
		logger:    logging.NewNop(),
		aliases:   make(map[string][]string),
		templates: make(map[string]string),
	}
	return c.Save()
}

// Save persists the whole config atomically.
func (c *Config) Save() error {
	doc := document{
		Aliases:   c.aliases,
		Templates: c.templates,
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return writeFileAtomic(c.path, data, 0o644)
}

// AddAlias registers an alias for an ordered list of member names. A name
// already used by a custom template is always rejected; an existing alias is
// rejected unless overwrite is set. Members reaching back to name through
// other aliases are rejected so read-time expansion can recurse freely.
func (c *Config) AddAlias(name string, members []string, overwrite bool) error {
	if name = strings.TrimSpace(name); name == "" {
		return errors.New("alias name cannot be empty")
	}
	if len(members) == 0 {
		return fmt.Errorf("alias %q needs at least one member", name)
	}
	if _, ok := c.templates[name]; ok {
		return fmt.Errorf("%w: %q is already a custom template", ErrNameCollision, name)
	}
	if _, ok := c.aliases[name]; ok && !overwrite {
		return fmt.Errorf("%w: alias %q already exists", ErrNameCollision, name)
	}
	if err := c.checkCycle(name, members, map[string]struct{}{name: {}}); err != nil {
		return err
	}

	c.aliases[name] = append([]string(nil), members...)
	if err := c.Save(); err != nil {
		return err
	}

	c.logger.Debug("added alias",
		logging.String("name", name),
		logging.Int("member_count", len(members)))
	return nil
}

// checkCycle walks the candidate member list depth-first through the existing
// aliases. The expanding set holds every name on the current path; revisiting
// one means the new edge would close a loop.
func (c *Config) checkCycle(root string, members []string, expanding map[string]struct{}) error {
	for _, member := range members {
		if _, ok := expanding[member]; ok {
			return fmt.Errorf("%w: alias %q reaches itself through %q", ErrCyclicAlias, root, member)
		}
		next, ok := c.aliases[member]
		if !ok {
			continue
		}
		expanding[member] = struct{}{}
		if err := c.checkCycle(root, next, expanding); err != nil {
			return err
		}
		delete(expanding, member)
	}
	return nil
}

// RemoveAlias deletes an alias and reports whether it existed. Removing an
// absent alias succeeds without touching the file.
func (c *Config) RemoveAlias(name string) (bool, error) {
	if _, ok := c.aliases[name]; !ok {
		return false, nil
	}
	delete(c.aliases, name)
	if err := c.Save(); err != nil {
		return true, err
	}
	c.logger.Debug("removed alias", logging.String("name", name))
	return true, nil
}

// AddTemplate stores a custom template body under name. A name already used
// by an alias is always rejected; an existing template is rejected unless
// overwrite is set.
func (c *Config) AddTemplate(name, content string, overwrite bool) error {
	if name = strings.TrimSpace(name); name == "" {
		return errors.New("template name cannot be empty")
	}
	if _, ok := c.aliases[name]; ok {
		return fmt.Errorf("%w: %q is already an alias", ErrNameCollision, name)
	}
	if _, ok := c.templates[name]; ok && !overwrite {
		return fmt.Errorf("%w: template %q already exists", ErrNameCollision, name)
	}

	c.templates[name] = content
	if err := c.Save(); err != nil {
		return err
	}

	c.logger.Debug("added template",
		logging.String("name", name),
		logging.Int("content_bytes", len(content)))
	return nil
}

// RemoveTemplate deletes a custom template and reports whether it existed.
func (c *Config) RemoveTemplate(name string) (bool, error) {
	if _, ok := c.templates[name]; !ok {
		return false, nil
	}
	delete(c.templates, name)
	if err := c.Save(); err != nil {
		return true, err
	}
	c.logger.Debug("removed template", logging.String("name", name))
	return true, nil
}

// AliasMembers returns the ordered member list for an alias.
func (c *Config) AliasMembers(name string) ([]string, bool) {
	members, ok := c.aliases[name]
	return members, ok
}

// TemplateContent returns the stored body for a custom template.
func (c *Config) TemplateContent(name string) (string, bool) {
	content, ok := c.templates[name]
	return content, ok
}

// AliasNames returns every alias name, sorted.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.aliases))
	for name := range c.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TemplateNames returns every custom template name, sorted.
func (c *Config) TemplateNames() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the location of the persisted config file.
func (c *Config) Path() string {
	return c.path
}

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
