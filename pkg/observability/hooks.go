// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about export runs and project store operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExportHooks(&myExportHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Export().OnExportStart(ctx, format)
//	// ... render and write ...
//	observability.Export().OnExportComplete(ctx, format, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from the export boundary.
type ExportHooks interface {
	// OnExportStart fires before a project is rendered for export.
	OnExportStart(ctx context.Context, format string)

	// OnExportComplete fires after the export artifact is written (or failed).
	// size is the artifact size in bytes, zero on failure.
	OnExportComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from project store operations.
type StoreHooks interface {
	// OnStoreGet records a project load. found is false for misses.
	OnStoreGet(ctx context.Context, backend string, found bool)

	// OnStorePut records a project save.
	OnStorePut(ctx context.Context, backend string, size int)

	// OnStoreDelete records a project removal.
	OnStoreDelete(ctx context.Context, backend string)
}

// =============================================================================
// No-op defaults
// =============================================================================

type noopExportHooks struct{}

func (noopExportHooks) OnExportStart(context.Context, string) {}
func (noopExportHooks) OnExportComplete(context.Context, string, int, time.Duration, error) {
}

type noopStoreHooks struct{}

func (noopStoreHooks) OnStoreGet(context.Context, string, bool) {}
func (noopStoreHooks) OnStorePut(context.Context, string, int)  {}
func (noopStoreHooks) OnStoreDelete(context.Context, string)    {}

// =============================================================================
// Registration
// =============================================================================

var (
	mu          sync.RWMutex
	exportHooks ExportHooks = noopExportHooks{}
	storeHooks  StoreHooks  = noopStoreHooks{}
)

// SetExportHooks registers export hooks. Pass nil to restore the no-op default.
// Should be called once at startup, before any exports run.
func SetExportHooks(h ExportHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		exportHooks = noopExportHooks{}
		return
	}
	exportHooks = h
}

// SetStoreHooks registers store hooks. Pass nil to restore the no-op default.
func SetStoreHooks(h StoreHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		storeHooks = noopStoreHooks{}
		return
	}
	storeHooks = h
}

// Export returns the registered export hooks (never nil).
func Export() ExportHooks {
	mu.RLock()
	defer mu.RUnlock()
	return exportHooks
}

// Store returns the registered store hooks (never nil).
func Store() StoreHooks {
	mu.RLock()
	defer mu.RUnlock()
	return storeHooks
}
