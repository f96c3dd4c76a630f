package cpom

import (
	"github.com/edaniels/golog"

	"github.com/vdedun/cpom/mesh"
)

// Option configures Construct's octree growth policy, linear-scan threshold,
// and logger. None of these change query semantics; they only trade index
// build cost against query cost.
type Option func(*mesh.Params)

// WithMaxDepth overrides the octree's maximum depth (default 10).
func WithMaxDepth(maxDepth int) Option {
	return func(p *mesh.Params) { p.MaxDepth = maxDepth }
}

// WithMaxFill overrides the octree's fill threshold (default 3.0).
func WithMaxFill(maxFill float32) Option {
	return func(p *mesh.Params) { p.MaxFill = maxFill }
}

// WithLinearScanThreshold overrides the face count below which Construct
// skips octree construction in favor of linear scan at query time (default
// 32).
func WithLinearScanThreshold(threshold int) Option {
	return func(p *mesh.Params) { p.LinearScanThreshold = threshold }
}

// WithLogger supplies a logger for construction and query diagnostics. The
// default is silent.
func WithLogger(logger golog.Logger) Option {
	return func(p *mesh.Params) { p.Logger = logger }
}
