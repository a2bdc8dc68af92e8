package domain

import (
	"fmt"
	"time"
)

// DiagnosticKind classifies recovered problems. Anything fatal is an error
// returned by the pipeline instead.
type DiagnosticKind string

const (
	// DiagSkippedRow marks a blank row or a row with too few columns;
	// the row is ignored and processing continues.
	DiagSkippedRow DiagnosticKind = "skipped-row"
	// DiagCompleteness marks an entry missing expected files/urls, or a
	// variant row with an unrecognized file extension.
	DiagCompleteness DiagnosticKind = "completeness"
	// DiagOptionParse marks a recognized option key with no parseable value.
	DiagOptionParse DiagnosticKind = "option-parse"
)

// Diagnostic is one recovered warning, reported alongside the catalog.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// RunSummary is the persisted record of one pipeline invocation.
type RunSummary struct {
	Command   string
	Input     string
	Entries   int
	Documents int
	Warnings  int
	StartedAt time.Time
}

// StoredDocument is the persisted per-artifact record, keyed by file path,
// so later runs can reuse known checksums instead of re-reading files.
type StoredDocument struct {
	FilePath string
	MD5      string
	Title    string
	URL      string
	Date     string
}
