package cli

import (
	"context"
	"time"

	"github.com/matzehuels/zbxmap/pkg/observability"
)

// LogHooks reports API calls and pipeline stages at debug level, using the
// logger attached to the call's context.
type LogHooks struct{}

var (
	_ observability.RPCHooks      = LogHooks{}
	_ observability.PipelineHooks = LogHooks{}
)

// OnCall implements observability.RPCHooks.
func (LogHooks) OnCall(ctx context.Context, method string) {
	loggerFromContext(ctx).Debug("API call", "method", method)
}

// OnResult implements observability.RPCHooks.
func (LogHooks) OnResult(ctx context.Context, method string, d time.Duration, err error) {
	logger := loggerFromContext(ctx)
	if err != nil {
		logger.Debug("API call failed", "method", method, "took", d.Round(time.Millisecond), "err", err)
		return
	}
	logger.Debug("API call done", "method", method, "took", d.Round(time.Millisecond))
}

// OnStageStart implements observability.PipelineHooks.
func (LogHooks) OnStageStart(ctx context.Context, stage string) {
	loggerFromContext(ctx).Debug("Stage started", "stage", stage)
}

// OnStageComplete implements observability.PipelineHooks.
func (LogHooks) OnStageComplete(ctx context.Context, stage string, d time.Duration, err error) {
	logger := loggerFromContext(ctx)
	if err != nil {
		logger.Debug("Stage failed", "stage", stage, "took", d.Round(time.Millisecond), "err", err)
		return
	}
	logger.Debug("Stage done", "stage", stage, "took", d.Round(time.Millisecond))
}
