// Package engine wraps the JaCoCo toolchain behind a narrow procedural
// interface. All instrumentation, execution-data parsing, coverage
// computation and report rendering happens inside JaCoCo; this package only
// knows how to invoke it.
package engine

import "context"

// ReportRequest describes one report generation pass: the execution data to
// load, the class roots to analyze against it, and the outputs to render.
// An empty format path disables that format.
type ReportRequest struct {
	ExecFiles   []string
	ClassRoots  []string
	SourceRoots []string

	HTML string
	XML  string
	CSV  string

	Name     string
	Encoding string
	TabWidth int
	Quiet    bool
}

// Engine is the coverage engine boundary. Implementations are expected to be
// synchronous; every call is attempted exactly once.
type Engine interface {
	// Report loads the request's exec files into a single execution-data
	// store, analyzes the class roots against it and renders the enabled
	// report formats.
	Report(ctx context.Context, req ReportRequest) error

	// Merge combines multiple execution data files into dest.
	Merge(ctx context.Context, execFiles []string, dest string) error

	// Instrument performs offline instrumentation of the class roots,
	// writing instrumented copies under dest.
	Instrument(ctx context.Context, classRoots []string, dest string) error
}
