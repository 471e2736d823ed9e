package cli

import (
	"path/filepath"

	"github.com/menuforge/menuforge/pkg/config"
)

// templatesDir is where custom templates are stored.
func templatesDir() string {
	return filepath.Join(config.Dir(), "templates")
}
