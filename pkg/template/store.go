package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound reports a template name with no saved file.
	ErrNotFound = errors.New("template not found")
	// ErrExists reports a name collision on save without force.
	ErrExists = errors.New("template already exists")
)

// Store persists templates as one YAML file per name under a fixed
// directory.
type Store struct {
	dir string
}

// DefaultDir resolves the per-user template directory. The
// AGENDA_TEMPLATE_PATH environment variable overrides it.
func DefaultDir() (string, error) {
	if override := os.Getenv("AGENDA_TEMPLATE_PATH"); override != "" {
		return override, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "agenda", "templates"), nil
}

// NewStore opens a store rooted at dir, or at DefaultDir when dir is
// empty.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// Save writes the template, refusing to overwrite an existing name unless
// force is set.
func (s *Store) Save(t *Template, force bool) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("template: ensure directory: %w", err)
	}
	path := s.path(t.Name)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%q: %w", t.Name, ErrExists)
		}
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads one template by name.
func (s *Store) Load(name string) (*Template, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	return &t, nil
}

// List returns all saved templates sorted by name. A malformed file is
// skipped with a note to stderr; one bad entry must not break the listing.
func (s *Store) List() ([]*Template, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]*Template, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".yaml")
		t, err := s.Load(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "template %s: %v\n", name, err)
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a saved template by name.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return err
}
