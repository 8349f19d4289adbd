package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vlseq"
)

func TestSketchInline(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s, err := vlseq.FromSlice(vlseq.Config{InlineCap: 4}, []int{1, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	var bf bytes.Buffer
	if err := Sketch(&bf, s, NewConsole(nil)); err != nil {
		t.Fatalf("Sketch failed: %v", err)
	}
	out := bf.String()
	t.Logf("sketch = %s", out)
	if !strings.Contains(out, "inline") {
		t.Errorf("sketch should name the inline mode: %q", out)
	}
	if !strings.Contains(out, "size=2") || !strings.Contains(out, "cap=4") {
		t.Errorf("sketch should show size and capacity: %q", out)
	}
	if !strings.Contains(out, "1") || !strings.Contains(out, "2") {
		t.Errorf("sketch should show live elements: %q", out)
	}
}

func TestSketchHeap(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s, err := vlseq.NewFill(vlseq.Config{InlineCap: 4}, 6, "ab")
	if err != nil {
		t.Fatalf("NewFill failed: %v", err)
	}
	var bf bytes.Buffer
	if err := Sketch(&bf, s, nil); err != nil {
		t.Fatalf("Sketch failed: %v", err)
	}
	out := bf.String()
	t.Logf("sketch = %s", out)
	if !strings.Contains(out, "heap") {
		t.Errorf("sketch should name the heap mode: %q", out)
	}
	if !strings.Contains(out, "cap=9") {
		t.Errorf("sketch should show the grown capacity: %q", out)
	}
}

func TestSketchNilSequence(t *testing.T) {
	var bf bytes.Buffer
	if err := Sketch[int](&bf, nil, nil); err == nil {
		t.Error("Sketch of a nil sequence should fail")
	}
}
