package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRPCHooks{}
	r.OnCall(ctx, "map.get")
	r.OnResult(ctx, "map.get", time.Second, nil)

	p := NoopPipelineHooks{}
	p.OnStageStart(ctx, StageLayout)
	p.OnStageComplete(ctx, StageLayout, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := RPC().(NoopRPCHooks); !ok {
		t.Error("RPC() should return NoopRPCHooks by default")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	customRPC := &testRPCHooks{}
	SetRPCHooks(customRPC)
	if RPC() != customRPC {
		t.Error("SetRPCHooks should set custom hooks")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	Reset()
	if _, ok := RPC().(NoopRPCHooks); !ok {
		t.Error("Reset() should restore NoopRPCHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRPCHooks{}
	SetRPCHooks(custom)
	SetRPCHooks(nil)

	if RPC() != custom {
		t.Error("SetRPCHooks(nil) should be ignored")
	}
}

func TestStage(t *testing.T) {
	Reset()
	defer Reset()

	h := &testPipelineHooks{}
	SetPipelineHooks(h)

	boom := errors.New("boom")
	done := Stage(context.Background(), StageBuild)
	done(boom)

	if len(h.started) != 1 || h.started[0] != StageBuild {
		t.Errorf("started = %v, want [build]", h.started)
	}
	if len(h.completed) != 1 || h.completed[0] != StageBuild {
		t.Errorf("completed = %v, want [build]", h.completed)
	}
	if !errors.Is(h.lastErr, boom) {
		t.Errorf("lastErr = %v, want boom", h.lastErr)
	}
}

type testRPCHooks struct{ NoopRPCHooks }

type testPipelineHooks struct {
	started   []string
	completed []string
	lastErr   error
}

func (h *testPipelineHooks) OnStageStart(_ context.Context, stage string) {
	h.started = append(h.started, stage)
}

func (h *testPipelineHooks) OnStageComplete(_ context.Context, stage string, _ time.Duration, err error) {
	h.completed = append(h.completed, stage)
	h.lastErr = err
}
