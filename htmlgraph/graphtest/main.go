// htmlgraph/graphtest/main.go
// Package graphtest glues htmlgraph into a `go test` binary. A one-line
// TestMain gives every test case in the package access to
// htmlgraph.RenderGraph, toggled by the -renderto flag.
package graphtest

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/mwiater/benchplot/htmlgraph"
)

// renderTo is registered at package load so it appears alongside the
// standard test flags of any binary that imports graphtest.
var renderTo = flag.String("renderto", "", "render all benchmark graphs into this HTML file")

// Option adjusts the sink configuration during Main. Options run after
// the defaults (violin plots with legends), so each test binary appends
// its own chain, e.g.:
//
//	func TestMain(m *testing.M) {
//		os.Exit(graphtest.Main(m, func(s *htmlgraph.Sink) *htmlgraph.Sink {
//			return s.ShowEpochs(true).RangeMode("tozero")
//		}))
//	}
type Option func(*htmlgraph.Sink) *htmlgraph.Sink

// Main is a TestMain body that adds HTML graph rendering to a test
// binary. It parses the -renderto flag, and when a path was given opens
// a sink there and publishes it for RenderGraph before running the
// tests. The epilogue is written before Main returns, on every path
// that saw a successful open. The return value is the exit code: the
// test run's own code, or 1 when an explicitly requested report file
// cannot be opened.
func Main(m *testing.M, opts ...Option) int {
	if !flag.Parsed() {
		flag.Parse()
	}

	sink := harnessSink(opts...)
	defer sink.Close()

	if *renderTo != "" {
		if err := sink.Open(*renderTo); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		htmlgraph.SetGraphSink(sink)
	}

	return m.Run()
}

// harnessSink builds the sink Main publishes: violin plots with the
// legend enabled, then the binary's option chain on top.
func harnessSink(opts ...Option) *htmlgraph.Sink {
	sink := htmlgraph.NewSink("violin").ShowLegend(true)
	for _, opt := range opts {
		sink = opt(sink)
	}
	return sink
}
