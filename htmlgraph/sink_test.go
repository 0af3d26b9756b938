// htmlgraph/sink_test.go
package htmlgraph

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/benchplot/bench"
)

const wantPrologue = "<!doctype html>\n" +
	"<html>\n" +
	"  <head>\n" +
	"    <script src=\"https://cdn.plot.ly/plotly-3.0.1.min.js\"></script>\n" +
	"  </head>\n" +
	"  <body>\n"

const wantEpilogue = "  </body>\n" +
	"</html>\n"

// sampleBench returns a benchmark titled "T" with one series "S" of
// samples 1, 2, 3.
func sampleBench() *bench.Bench {
	b := bench.New().Title("T")
	b.Record("S", 1, 2, 3)
	return b
}

// renderFile opens a sink in a temp dir, runs fill, closes it, and
// returns the file contents.
func renderFile(t *testing.T, s *Sink, fill func(s *Sink)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.html")
	if err := s.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	fill(s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data)
}

func TestOpen_WritesPrologue(t *testing.T) {
	got := renderFile(t, NewSink("violin"), func(*Sink) {})
	if got != wantPrologue+wantEpilogue {
		t.Errorf("empty document mismatch:\n%q", got)
	}
}

func TestOpen_FailureLeavesSinkClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "dir", "out.html")
	s := NewSink("violin")
	err := s.Open(path)
	if !errors.Is(err, ErrOutputUnavailable) {
		t.Fatalf("expected ErrOutputUnavailable, got %v", err)
	}
	if s.IsOpen() {
		t.Error("sink must stay closed after a failed Open")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file must be created on Open failure")
	}
	// Close on a never-opened sink must not write anything anywhere.
	if err := s.Close(); err != nil {
		t.Errorf("Close after failed Open: %v", err)
	}
}

func TestRenderTo_ClosedSinkIsNoOp(t *testing.T) {
	s := NewSink("violin")
	if err := s.RenderTo(sampleBench(), "div1"); err != nil {
		t.Errorf("RenderTo on closed sink: %v", err)
	}
}

func TestRenderTo_SingleBlockDefaults(t *testing.T) {
	s := NewSink("violin").ShowLegend(true)
	got := renderFile(t, s, func(s *Sink) {
		if err := s.RenderTo(sampleBench(), "div1"); err != nil {
			t.Fatalf("RenderTo: %v", err)
		}
	})

	if !strings.HasPrefix(got, wantPrologue) {
		t.Error("document must start with the prologue")
	}
	if !strings.HasSuffix(got, wantEpilogue) {
		t.Error("document must end with the epilogue")
	}
	for _, want := range []string{
		"    <div id='div1'>\n",
		"showlegend: true",
		"rangemode: 'tozero'",
		"type: 'violin'",
		"var title = 'T';",
		"name: 'S (error: ' + (100*0.5).toFixed(2) + '%)',",
		"y: [1, 2, 3],",
		"Plotly.newPlot('div1', data, layout, {responsive: true});",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "<div id="); n != 1 {
		t.Errorf("expected exactly 1 plot div, got %d", n)
	}
	if n := strings.Count(got, "rangemode:"); n != 1 {
		t.Errorf("expected exactly 1 rangemode directive, got %d", n)
	}
}

func TestRenderTo_RangeModeDisabled(t *testing.T) {
	s := NewSink("violin").ShowLegend(true).RangeMode("")
	got := renderFile(t, s, func(s *Sink) {
		if err := s.RenderTo(sampleBench(), "div1"); err != nil {
			t.Fatalf("RenderTo: %v", err)
		}
	})
	if strings.Contains(got, "rangemode:") {
		t.Error("rangemode directive must be absent when disabled")
	}
	if !strings.Contains(got, "yaxis: { title: 'time per unit', autorange: true }") {
		t.Error("yaxis must keep autorange without a rangemode directive")
	}
}

func TestRenderTo_ShowEpochs(t *testing.T) {
	s := NewSink("violin").ShowEpochs(true)
	if !strings.Contains(s.skeleton("d", ""), "; epochs: {{epochs}}") {
		t.Error("skeleton must carry the epochs placeholder when enabled")
	}

	got := renderFile(t, s, func(s *Sink) {
		if err := s.RenderTo(sampleBench(), "div1"); err != nil {
			t.Fatalf("RenderTo: %v", err)
		}
	})
	if !strings.Contains(got, "%; epochs: 3)',") {
		t.Errorf("epoch suffix not substituted:\n%s", got)
	}
}

func TestRenderTo_ShowLegendFalseByDefault(t *testing.T) {
	got := renderFile(t, NewSink("violin"), func(s *Sink) {
		if err := s.RenderTo(sampleBench(), "div1"); err != nil {
			t.Fatalf("RenderTo: %v", err)
		}
	})
	if !strings.Contains(got, "showlegend: false") {
		t.Error("constructor default must be showlegend: false")
	}
}

func TestRenderTo_PlotTypeOverride(t *testing.T) {
	s := NewSink("violin")
	got := renderFile(t, s, func(s *Sink) {
		if err := s.RenderTo(sampleBench(), "div1", "box"); err != nil {
			t.Fatalf("RenderTo: %v", err)
		}
		if err := s.RenderTo(sampleBench(), "div2"); err != nil {
			t.Fatalf("RenderTo: %v", err)
		}
	})
	if !strings.Contains(got, "type: 'box'") {
		t.Error("per-call override must win for its block")
	}
	if !strings.Contains(got, "type: 'violin'") {
		t.Error("sink plot type must apply when no override is given")
	}
}

func TestRenderTo_ManyBlocksKeepOrder(t *testing.T) {
	got := renderFile(t, NewSink("violin"), func(s *Sink) {
		for _, id := range []string{"a", "b", "c"} {
			if err := s.RenderTo(sampleBench(), id); err != nil {
				t.Fatalf("RenderTo(%s): %v", id, err)
			}
		}
	})

	ia := strings.Index(got, "<div id='a'>")
	ib := strings.Index(got, "<div id='b'>")
	ic := strings.Index(got, "<div id='c'>")
	if ia < 0 || ib < 0 || ic < 0 || !(ia < ib && ib < ic) {
		t.Errorf("blocks out of order: a=%d b=%d c=%d", ia, ib, ic)
	}
	for _, id := range []string{"a", "b", "c"} {
		call := "Plotly.newPlot('" + id + "', data, layout, {responsive: true});"
		if !strings.Contains(got, call) {
			t.Errorf("missing %q", call)
		}
	}
	if n := strings.Count(got, "<div id="); n != 3 {
		t.Errorf("expected 3 plot divs, got %d", n)
	}
}

func TestRenderTo_DefaultDivID(t *testing.T) {
	got := renderFile(t, NewSink("violin"), func(s *Sink) {
		if err := s.RenderTo(sampleBench()); err != nil {
			t.Fatalf("RenderTo: %v", err)
		}
	})
	if !strings.Contains(got, "<div id='mydiv'>") {
		t.Error("default div id must be mydiv")
	}
}

func TestClose_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	s := NewSink("violin")
	if err := s.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if n := strings.Count(string(data), "</html>"); n != 1 {
		t.Errorf("epilogue must be written exactly once, found %d", n)
	}
}

func TestStream_ReflectsOpenState(t *testing.T) {
	s := NewSink("violin")
	if s.Stream() != nil {
		t.Error("closed sink must expose no stream")
	}
	path := filepath.Join(t.TempDir(), "out.html")
	if err := s.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if s.Stream() == nil {
		t.Error("open sink must expose its stream")
	}
	if s.Filename() != path {
		t.Errorf("Filename: expected %q, got %q", path, s.Filename())
	}
}
