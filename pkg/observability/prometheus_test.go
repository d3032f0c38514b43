package observability

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusHooks(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	h := NewPrometheusHooks(reg)

	h.OnSourceStart(ctx, "snomed-concepts", "concepts.txt")
	h.OnRecordSkipped(ctx, "snomed-concepts", errors.New("bad row"))
	h.OnRecordSkipped(ctx, "snomed-concepts", errors.New("bad row"))
	h.OnSourceComplete(ctx, "snomed-concepts", 40, 2, time.Second, nil)
	h.OnChainsComplete(ctx, 5, 1, time.Millisecond)
	h.OnRenderComplete(ctx, "spring", []string{"png", "svg"}, time.Second, errors.New("disk full"))
	h.OnCacheHit(ctx, "graph")

	if got := testutil.ToFloat64(h.sourceRecords.WithLabelValues("snomed-concepts")); got != 40 {
		t.Errorf("records = %v, want 40", got)
	}
	if got := testutil.ToFloat64(h.sourceSkipped.WithLabelValues("snomed-concepts")); got != 2 {
		t.Errorf("skipped = %v, want 2", got)
	}
	if got := testutil.ToFloat64(h.chainsFailed); got != 1 {
		t.Errorf("chains unresolved = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.renders.WithLabelValues("spring", "error")); got != 1 {
		t.Errorf("failed renders = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.cacheOps.WithLabelValues("graph", "hit")); got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewPrometheusHooks(reg)
	h.OnSourceComplete(context.Background(), "gene-ontology", 7, 0, time.Second, nil)

	path := filepath.Join(t.TempDir(), "kgraph.prom")
	if err := WriteTextfile(path, reg); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `kgraph_source_records_total{source="gene-ontology"} 7`) {
		t.Errorf("textfile missing records counter:\n%s", data)
	}
}
