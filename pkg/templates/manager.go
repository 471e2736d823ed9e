package templates

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/menuforge/menuforge/pkg/errors"
	"github.com/menuforge/menuforge/pkg/menu"
)

// Manager stores user-authored templates as TOML files in a directory, one
// file per template named <id>.toml.
type Manager struct {
	dir string
}

// NewManager creates a template manager rooted at dir. The directory is
// created if it doesn't exist.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create template dir %s", dir)
	}
	return &Manager{dir: dir}, nil
}

// Add stores a new custom template. A missing id is assigned; the custom
// markers are always enforced so a built-in can never be shadowed in place.
func (m *Manager) Add(t menu.MenuTemplate) (menu.MenuTemplate, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.IsCustom = true
	if t.Family == "" {
		t.Family = menu.FamilyCustom
	}
	if err := m.write(t); err != nil {
		return menu.MenuTemplate{}, err
	}
	return t, nil
}

// Update replaces a stored custom template by id.
func (m *Manager) Update(t menu.MenuTemplate) error {
	if _, err := os.Stat(m.path(t.ID)); os.IsNotExist(err) {
		return errors.New(errors.ErrCodeTemplateNotFound, "custom template %s not found", t.ID)
	}
	t.IsCustom = true
	return m.write(t)
}

// Delete removes a stored custom template. Deleting a template that a saved
// project still references is allowed; the project falls back to the
// default built-in at load time (see Resolve).
func (m *Manager) Delete(id string) error {
	err := os.Remove(m.path(id))
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeTemplateNotFound, "custom template %s not found", id)
	}
	return err
}

// Get loads one custom template by id.
func (m *Manager) Get(id string) (menu.MenuTemplate, error) {
	var t menu.MenuTemplate
	if _, err := toml.DecodeFile(m.path(id), &t); err != nil {
		if os.IsNotExist(err) {
			return t, errors.New(errors.ErrCodeTemplateNotFound, "custom template %s not found", id)
		}
		return t, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "decode template %s", id)
	}
	return t, nil
}

// List returns all stored custom templates sorted by name. Files that fail
// to decode are skipped rather than failing the listing; a corrupt entry
// must not hide the rest of the catalog.
func (m *Manager) List() ([]menu.MenuTemplate, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read template dir %s", m.dir)
	}

	var out []menu.MenuTemplate
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		var t menu.MenuTemplate
		if _, err := toml.DecodeFile(filepath.Join(m.dir, e.Name()), &t); err != nil {
			continue
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Manager) write(t menu.MenuTemplate) error {
	f, err := os.Create(m.path(t.ID))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create template file")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(t); err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode template %s", t.ID)
	}
	return nil
}

func (m *Manager) path(id string) string {
	return filepath.Join(m.dir, id+".toml")
}
