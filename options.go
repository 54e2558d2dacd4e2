package polyextrude

import "github.com/osuushi/polyextrude/internal"

type Option func(*options)

type options struct {
	windingEpsilon   float64
	warn             internal.WarnFunc
	normalizeWinding bool
	filterDegenerate bool
	convexFastPath   bool
}

func newOptions(opts []Option) *options {
	o := &options{
		windingEpsilon:   internal.DefaultWindingEpsilon,
		warn:             internal.LogWarning,
		normalizeWinding: true,
		filterDegenerate: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Below this magnitude, the winding sum of a polygon is considered to cancel
// out, and a DegenerateGeometry diagnostic is reported. Defaults to 1e-5.
func WithWindingEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.windingEpsilon = epsilon
	}
}

// Receive diagnostics instead of having them logged. A nil function discards
// them.
func WithWarnings(warn func(Diagnostic)) Option {
	return func(o *options) {
		o.warn = warn
	}
}

// Reverse clockwise polygons before triangulating. On by default. When off,
// clockwise input usually fails with ErrNoEar, and can otherwise produce
// triangles outside the polygon.
func WithWindingNormalization(enabled bool) Option {
	return func(o *options) {
		o.normalizeWinding = enabled
	}
}

// Drop zero area triangles before extruding. On by default.
func WithDegenerateFilter(enabled bool) Option {
	return func(o *options) {
		o.filterDegenerate = enabled
	}
}

// Use fan triangulation when the polygon turns out to be convex. Off by
// default, so that output is always the ear clipping result.
func WithConvexFastPath(enabled bool) Option {
	return func(o *options) {
		o.convexFastPath = enabled
	}
}
