// htmlgraph/global.go
// Package: htmlgraph
package htmlgraph

import "github.com/mwiater/benchplot/bench"

// graphSink is the process-wide report sink. It stays nil unless a
// report was requested, so every test case can call RenderGraph
// unconditionally. Set once during harness start, before any test runs;
// never written afterwards.
var graphSink *Sink

// SetGraphSink publishes s as the process-wide sink. Pass nil to
// disable rendering again.
func SetGraphSink(s *Sink) {
	graphSink = s
}

// GraphSink returns the process-wide sink, or nil when no report was
// requested.
func GraphSink() *Sink {
	return graphSink
}

// RenderGraph renders b into the process-wide sink. When no sink has
// been published this does nothing, so graph emission is completely
// optional from each test case's point of view. extras are forwarded to
// Sink.RenderTo: extras[0] is the <div> id, extras[1] a per-call plot
// type override.
func RenderGraph(b *bench.Bench, extras ...string) error {
	if graphSink == nil {
		return nil
	}
	return graphSink.RenderTo(b, extras...)
}
