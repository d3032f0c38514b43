// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about source ingestion, graph analysis and
// snapshot cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so library packages never
// import a metrics backend. [NewPrometheusHooks] is the bundled backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    hooks := observability.NewPrometheusHooks(prometheus.NewRegistry())
//	    observability.SetIngestHooks(hooks)
//	    observability.SetAnalysisHooks(hooks)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Ingest().OnSourceStart(ctx, "drugbank-carriers", path)
//	// ... load records ...
//	observability.Ingest().OnSourceComplete(ctx, "drugbank-carriers", records, skipped, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Ingest Hooks
// =============================================================================

// IngestHooks receives events from the source adapters.
type IngestHooks interface {
	OnSourceStart(ctx context.Context, source, path string)
	// OnRecordSkipped is called once per malformed record that was logged
	// and skipped.
	OnRecordSkipped(ctx context.Context, source string, err error)
	OnSourceComplete(ctx context.Context, source string, records, skipped int, duration time.Duration, err error)
}

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events from level assignment, chain enumeration
// and rendering.
type AnalysisHooks interface {
	OnLevelsComplete(ctx context.Context, roots, reached int, duration time.Duration)
	OnChainsComplete(ctx context.Context, chains, unresolved int, duration time.Duration)

	OnRenderStart(ctx context.Context, layout string, nodeCount int)
	OnRenderComplete(ctx context.Context, layout string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopIngestHooks is a no-op implementation of IngestHooks.
type NoopIngestHooks struct{}

func (NoopIngestHooks) OnSourceStart(context.Context, string, string)  {}
func (NoopIngestHooks) OnRecordSkipped(context.Context, string, error) {}
func (NoopIngestHooks) OnSourceComplete(context.Context, string, int, int, time.Duration, error) {
}

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnLevelsComplete(context.Context, int, int, time.Duration) {}
func (NoopAnalysisHooks) OnChainsComplete(context.Context, int, int, time.Duration) {}
func (NoopAnalysisHooks) OnRenderStart(context.Context, string, int)                {}
func (NoopAnalysisHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	ingestHooks   IngestHooks   = NoopIngestHooks{}
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetIngestHooks registers custom ingest hooks.
// This should be called once at application startup before any source is loaded.
func SetIngestHooks(h IngestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		ingestHooks = h
	}
}

// SetAnalysisHooks registers custom analysis hooks.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Ingest returns the registered ingest hooks.
func Ingest() IngestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return ingestHooks
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	ingestHooks = NoopIngestHooks{}
	analysisHooks = NoopAnalysisHooks{}
	cacheHooks = NoopCacheHooks{}
}
