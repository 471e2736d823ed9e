// Package store persists menu projects.
//
// The Store interface abstracts over storage backends:
//   - memory: in-memory storage for development/testing
//   - file: JSON files under a directory, for CLI usage
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for document-oriented deployments
//
// Stores treat a project as an opaque document keyed by its id; they never
// interpret or rewrite its contents. Serialization is the same JSON shape
// produced by pkg/menu.
package store

import (
	"context"

	"github.com/menuforge/menuforge/pkg/errors"
	"github.com/menuforge/menuforge/pkg/menu"
)

// ErrNotFound is returned when a project does not exist in the store.
var ErrNotFound = errors.New(errors.ErrCodeProjectNotFound, "project not found")

// Store is the interface for project storage backends.
type Store interface {
	// Get retrieves a project by id. Returns ErrNotFound when missing.
	Get(ctx context.Context, id string) (*menu.MenuProject, error)

	// Put stores a project, replacing any existing document with the same id.
	Put(ctx context.Context, p *menu.MenuProject) error

	// List returns all stored projects. Order is backend-defined.
	List(ctx context.Context) ([]*menu.MenuProject, error)

	// Delete removes a project. Deleting a missing project is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}
