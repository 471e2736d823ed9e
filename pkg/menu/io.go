package menu

import (
	"encoding/json"
	"io"
	"os"

	"github.com/menuforge/menuforge/pkg/errors"
)

// ReadJSON decodes a project from r and validates its structure.
func ReadJSON(r io.Reader) (*MenuProject, error) {
	var p MenuProject
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "decode project")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// WriteJSON encodes a project to w with stable two-space indentation, so
// repeated writes of an unchanged project are byte-identical.
func WriteJSON(p *MenuProject, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode project")
	}
	return nil
}

// Load reads a project document from a file path.
func Load(path string) (*MenuProject, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "project file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Save writes a project document to a file path.
func Save(p *MenuProject, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(p, f)
}
