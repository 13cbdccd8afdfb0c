package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	NoopPipelineHooks
	resolves int
}

func (h *recordingPipelineHooks) OnResolveStart(context.Context, string) {
	h.resolves++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits   int
	misses int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string) { h.misses++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	ctx := context.Background()
	Pipeline().OnResolveStart(ctx, "Meth")
	Pipeline().OnResolveComplete(ctx, "Meth", 3, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "chart")
}

func TestSetPipelineHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingPipelineHooks{}
	SetPipelineHooks(h)

	Pipeline().OnResolveStart(context.Background(), "Meth")
	Pipeline().OnResolveStart(context.Background(), "Cocaine")

	if h.resolves != 2 {
		t.Errorf("resolves = %d, want 2", h.resolves)
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	Cache().OnCacheHit(context.Background(), "chart")
	Cache().OnCacheMiss(context.Background(), "artifact")

	if h.hits != 1 || h.misses != 1 {
		t.Errorf("hits = %d, misses = %d, want 1 and 1", h.hits, h.misses)
	}
}

func TestSetNilKeepsExisting(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingPipelineHooks{}
	SetPipelineHooks(h)
	SetPipelineHooks(nil)

	Pipeline().OnResolveStart(context.Background(), "Meth")
	if h.resolves != 1 {
		t.Error("nil registration replaced existing hooks")
	}
}
