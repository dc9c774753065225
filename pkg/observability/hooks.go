// Package observability provides hooks for logging, metrics, and tracing.
//
// Libraries emit events through the registered hooks; main decides what
// receives them. The defaults discard everything, so the library packages
// work without any setup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRPCHooks(&myRPCHooks{})
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.RPC().OnCall(ctx, "map.create")
//	// ... perform the call ...
//	observability.RPC().OnResult(ctx, "map.create", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Pipeline stages reported through [PipelineHooks].
const (
	StageLayout  = "layout"
	StageBuild   = "build"
	StagePublish = "publish"
)

// =============================================================================
// RPC Hooks
// =============================================================================

// RPCHooks receives events from Zabbix API calls.
type RPCHooks interface {
	// OnCall records an outgoing JSON-RPC request.
	OnCall(ctx context.Context, method string)

	// OnResult records the outcome of a request. err covers transport
	// failures as well as JSON-RPC error objects.
	OnResult(ctx context.Context, method string, duration time.Duration, err error)
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the conversion pipeline.
type PipelineHooks interface {
	OnStageStart(ctx context.Context, stage string)
	OnStageComplete(ctx context.Context, stage string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRPCHooks is a no-op implementation of RPCHooks.
type NoopRPCHooks struct{}

func (NoopRPCHooks) OnCall(context.Context, string)                          {}
func (NoopRPCHooks) OnResult(context.Context, string, time.Duration, error) {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnStageStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnStageComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	rpcHooks      RPCHooks      = NoopRPCHooks{}
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetRPCHooks registers custom RPC hooks. Nil is ignored.
func SetRPCHooks(h RPCHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		rpcHooks = h
	}
}

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// RPC returns the registered RPC hooks.
func RPC() RPCHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return rpcHooks
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Stage reports the start of stage and returns a function that reports its
// completion. Pass the stage's error to the returned function.
//
//	done := observability.Stage(ctx, observability.StageBuild)
//	m, err := builder.Build(ctx, name, g)
//	done(err)
func Stage(ctx context.Context, stage string) func(error) {
	h := Pipeline()
	start := time.Now()
	h.OnStageStart(ctx, stage)
	return func(err error) {
		h.OnStageComplete(ctx, stage, time.Since(start), err)
	}
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	rpcHooks = NoopRPCHooks{}
	pipelineHooks = NoopPipelineHooks{}
}
