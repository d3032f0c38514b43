package source

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/observability"
)

type recordingHooks struct {
	observability.NoopIngestHooks
	skipped  int
	complete bool
}

func (h *recordingHooks) OnRecordSkipped(context.Context, string, error) { h.skipped++ }
func (h *recordingHooks) OnSourceComplete(context.Context, string, int, int, time.Duration, error) {
	h.complete = true
}

func TestPass(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetIngestHooks(hooks)
	defer observability.Reset()

	var buf bytes.Buffer
	p := Begin(context.Background(), "test-source", "in.txt", log.New(&buf))
	p.Merged()
	p.Merged()
	p.Malformed("line 3", "%d columns", 2)

	stats, err := p.Done(nil)
	if err != nil {
		t.Fatal(err)
	}
	if stats != (Stats{Records: 2, Skipped: 1}) {
		t.Errorf("stats = %+v", stats)
	}
	if hooks.skipped != 1 || !hooks.complete {
		t.Errorf("hooks = %+v", hooks)
	}
	out := buf.String()
	if !strings.Contains(out, "skipping record") || !strings.Contains(out, "source=test-source") {
		t.Errorf("log output missing skip line:\n%s", out)
	}
}

type stubAdapter struct{ name string }

func (s stubAdapter) Name() string { return s.name }
func (stubAdapter) Load(context.Context, string, *kg.Graph) (Stats, error) {
	return Stats{}, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(stubAdapter{"b"}, stubAdapter{"a"})

	if !r.Has("a") || r.Has("c") {
		t.Error("Has() mismatch")
	}
	if got := r.Kinds(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Kinds() = %v", got)
	}
	_, err := r.Get("c")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("Get(c) err = %v", err)
	}
	if !strings.Contains(err.Error(), "a, b") {
		t.Errorf("error does not list kinds: %v", err)
	}
}

func TestNewOptionsDefaultsLogger(t *testing.T) {
	if NewOptions().Logger == nil {
		t.Error("default logger is nil")
	}
}
