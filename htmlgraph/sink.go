// htmlgraph/sink.go

// Package htmlgraph aggregates many micro-benchmark plots into one
// interactive HTML document. Each rendered benchmark becomes a Plotly
// box or violin plot; the legend side panel (when enabled) lets the
// reader toggle individual series. The document is self-contained apart
// from the Plotly runtime, which the browser loads from its CDN.
package htmlgraph

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mwiater/benchplot/bench"
)

// ErrOutputUnavailable reports that the report file could not be opened.
var ErrOutputUnavailable = errors.New("output unavailable")

const prologue = "<!doctype html>\n" +
	"<html>\n" +
	"  <head>\n" +
	// The version number may need to change from time to time
	"    <script src=\"https://cdn.plot.ly/plotly-3.0.1.min.js\"></script>\n" +
	"  </head>\n" +
	"  <body>\n"

const epilogue = "  </body>\n" +
	"</html>\n"

// Sink owns the output HTML document. Construct with NewSink, configure
// through the chained setters, call Open before rendering, and Close
// when every benchmark has been rendered. A Sink must not be copied
// once opened: it owns the underlying file handle.
type Sink struct {
	plotType   string
	showLegend string
	showEpochs string
	rangeMode  string
	filename   string
	file       *os.File
}

// NewSink returns a closed Sink that will emit plots of the given
// Plotly type ("box" or "violin" are the tested ones). Legends start
// disabled and the y axis is clamped to zero until configured otherwise.
func NewSink(plotType string) *Sink {
	return &Sink{
		plotType:   plotType,
		showLegend: "false",
		rangeMode:  ", rangemode: 'tozero'",
	}
}

// ShowLegend toggles the Plotly legend side panel. Chainable.
func (s *Sink) ShowLegend(show bool) *Sink {
	if show {
		s.showLegend = "true"
	} else {
		s.showLegend = "false"
	}
	return s
}

// ShowEpochs toggles an "; epochs: N" suffix on every series label,
// where N is filled in from the benchmark at render time. Chainable.
func (s *Sink) ShowEpochs(show bool) *Sink {
	if show {
		s.showEpochs = "; epochs: {{epochs}}"
	} else {
		s.showEpochs = ""
	}
	return s
}

// RangeMode sets the y-axis rangemode directive (commonly "tozero").
// An empty mode omits the directive so Plotly auto-ranges. Chainable.
func (s *Sink) RangeMode(mode string) *Sink {
	if mode != "" {
		s.rangeMode = ", rangemode: '" + mode + "'"
	} else {
		s.rangeMode = ""
	}
	return s
}

// Open creates (or truncates) path and writes the document prologue.
// On failure the error wraps ErrOutputUnavailable and the Sink is left
// unchanged, still closed.
func (s *Sink) Open(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: cannot render output to %s: %v", ErrOutputUnavailable, path, err)
	}
	s.filename = path
	s.file = f
	_, err = io.WriteString(f, prologue)
	return err
}

// IsOpen reports whether the Sink currently owns an open output file.
func (s *Sink) IsOpen() bool {
	return s.file != nil
}

// Filename returns the path passed to Open, or "" before Open.
func (s *Sink) Filename() string {
	return s.filename
}

// Stream exposes the underlying output for the benchmark renderer to
// write into. Returns nil when the Sink is not open.
func (s *Sink) Stream() io.Writer {
	if s.file == nil {
		return nil
	}
	return s.file
}

// RenderTo appends one plot block for b. extras[0] names the <div> the
// plot mounts into ("mydiv" when omitted; must be unique per document,
// which is the caller's responsibility). extras[1] overrides the Sink's
// plot type for this block only. Calling RenderTo on a Sink that is not
// open is a no-op, so test cases never need to know whether a report
// was requested.
//
// The benchmark must have finished executing all its epochs.
func (s *Sink) RenderTo(b *bench.Bench, extras ...string) error {
	if !s.IsOpen() {
		return nil
	}
	id := "mydiv"
	plotType := ""
	if len(extras) > 0 {
		id = extras[0]
	}
	if len(extras) > 1 {
		plotType = extras[1]
	}
	return bench.Render(s.skeleton(id, plotType), b, s.file)
}

// Close writes the document epilogue and releases the file. Only a Sink
// that was opened writes the epilogue, and only once; closing a fresh
// or already-closed Sink does nothing. Write errors on this path are
// absorbed: the report is best-effort and must not fail the test run
// on teardown.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	io.WriteString(s.file, epilogue)
	err := s.file.Close()
	s.file = nil
	return err
}

// skeleton returns the placeholder template for one plot block. id
// becomes the DOM element id; plotType overrides the configured plot
// type when non-empty. Everything per-benchmark stays a {{...}} marker
// for bench.Render to fill in; only sink-level options are spliced here.
func (s *Sink) skeleton(id, plotType string) string {
	typ := s.plotType
	if plotType != "" {
		typ = plotType
	}
	return "    <div id='" + id + "'>\n" +
		// Force no 100% space in-between graphs
		"      <div class='plot-container plotly' style='width: 100%;'></div>\n" +
		"    </div>\n" +
		"    <script>\n" +
		"        var data = [\n" +
		"            {{#result}}{\n" +
		"                name: '{{name}} (error: ' + (100*{{medianAbsolutePercentError(elapsed)}}).toFixed(2) + '%" + s.showEpochs + ")',\n" +
		"                y: [{{#measurement}}{{elapsed}}{{^-last}}, {{/last}}{{/measurement}}],\n" +
		"            },\n" +
		"            {{/result}}\n" +
		"        ];\n" +
		"        var title = '{{title}}';\n" +
		"\n" +
		"        data = data.map(a => Object.assign(a, { boxpoints: 'all', pointpos: 0, type: '" + typ + "', box: {visible: true}, meanline: {visible: true} }));\n" +
		"        var layout = { title: { text: title }, showlegend: " + s.showLegend + ", yaxis: { title: 'time per unit'" + s.rangeMode + ", autorange: true } };\n" +
		"        Plotly.newPlot('" + id + "', data, layout, {responsive: true});\n" +
		"    </script>\n"
}
