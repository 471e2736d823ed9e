package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/menuforge/menuforge/pkg/errors"
	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/observability"
)

// FileStore persists projects as JSON files in a directory, one file per
// project named <id>.json.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create store dir %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves a project by id.
func (s *FileStore) Get(ctx context.Context, id string) (*menu.MenuProject, error) {
	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		observability.Store().OnStoreGet(ctx, "file", false)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read project %s", id)
	}

	observability.Store().OnStoreGet(ctx, "file", true)
	return menu.ReadJSON(bytes.NewReader(data))
}

// Put stores a project.
func (s *FileStore) Put(ctx context.Context, p *menu.MenuProject) error {
	var buf bytes.Buffer
	if err := menu.WriteJSON(p, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(s.path(p.ID), buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write project %s", p.ID)
	}

	observability.Store().OnStorePut(ctx, "file", buf.Len())
	return nil
}

// List returns all stored projects sorted by name. Entries that fail to
// decode are skipped: one corrupt file must not hide the rest.
func (s *FileStore) List(ctx context.Context) ([]*menu.MenuProject, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read store dir %s", s.dir)
	}

	var out []*menu.MenuProject
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		p, err := menu.Load(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a project. Missing ids are ignored.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStore, err, "delete project %s", id)
	}

	observability.Store().OnStoreDelete(ctx, "file")
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
