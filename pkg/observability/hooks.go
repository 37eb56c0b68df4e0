// Package observability provides hooks for metrics and tracing.
//
// Libraries emit events through a process-wide registry of hook
// implementations. The defaults are no-ops, so instrumentation costs nothing
// until main registers a backend:
//
//	func main() {
//	    hooks, _ := prom.New(prometheus.DefaultRegisterer)
//	    observability.SetQueryHooks(hooks)
//	    observability.SetBuildHooks(hooks)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Query().OnQueryStart(ctx)
//	// ... run the query ...
//	observability.Query().OnQueryComplete(ctx, len(records), time.Since(start), err)
//
// The name of the data source is carried in the context (see [WithSource]) so
// that query functions with no knowledge of their caller can still be
// labelled.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Query Hooks
// =============================================================================

// QueryHooks receives events around the upstream category query.
type QueryHooks interface {
	OnQueryStart(ctx context.Context)
	OnQueryComplete(ctx context.Context, records int, duration time.Duration, err error)
}

// =============================================================================
// Build Hooks
// =============================================================================

// BuildStats describes one finished tree build.
type BuildStats struct {
	TopLevel int           // Nodes at the top level
	Total    int           // Nodes at every level
	Home     int           // Top-level nodes flagged for the home page
	Duration time.Duration // Time spent building, excluding the query
}

// BuildHooks receives events from tree builds.
type BuildHooks interface {
	OnBuildComplete(ctx context.Context, stats BuildStats)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopQueryHooks is a no-op implementation of QueryHooks.
type NoopQueryHooks struct{}

func (NoopQueryHooks) OnQueryStart(context.Context)                                {}
func (NoopQueryHooks) OnQueryComplete(context.Context, int, time.Duration, error) {}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildComplete(context.Context, BuildStats) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	queryHooks QueryHooks = NoopQueryHooks{}
	buildHooks BuildHooks = NoopBuildHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetQueryHooks registers custom query hooks. Nil is ignored.
func SetQueryHooks(h QueryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		queryHooks = h
	}
}

// SetBuildHooks registers custom build hooks. Nil is ignored.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Query returns the registered query hooks.
func Query() QueryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return queryHooks
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	queryHooks = NoopQueryHooks{}
	buildHooks = NoopBuildHooks{}
	httpHooks = NoopHTTPHooks{}
}

// =============================================================================
// Source Labels
// =============================================================================

type sourceKey struct{}

// WithSource returns a context labelled with the name of the data source.
func WithSource(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, sourceKey{}, name)
}

// SourceFromContext returns the source label of ctx, or "unknown".
func SourceFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(sourceKey{}).(string); ok && s != "" {
		return s
	}
	return "unknown"
}
