package internal

import (
	"fmt"
	"log"

	"github.com/logrusorgru/aurora"
)

// Diagnostics are for conditions that don't stop a triangulation or extrusion,
// but that make its output suspect. They are reported through a WarnFunc and
// never turned into errors.

type DiagnosticKind int

const (
	// Near-zero polygon area, or a zero area triangle.
	DegenerateGeometry DiagnosticKind = iota
	// A division by a near-zero denominator was absorbed.
	NumericInstability
)

func (k DiagnosticKind) String() string {
	switch k {
	case DegenerateGeometry:
		return "degenerate geometry"
	case NumericInstability:
		return "numeric instability"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

type WarnFunc func(Diagnostic)

// Writes the diagnostic to the standard logger with a coloured level tag.
func LogWarning(d Diagnostic) {
	log.Printf("%s %s", aurora.Yellow("WARN"), d)
}

// Collects diagnostics in order, for callers that want to inspect them rather
// than log them.
type DiagnosticList []Diagnostic

func (l *DiagnosticList) Warn(d Diagnostic) {
	*l = append(*l, d)
}

func (w WarnFunc) warnf(kind DiagnosticKind, format string, args ...interface{}) {
	if w == nil {
		return
	}
	w(Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)})
}
