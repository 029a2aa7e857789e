// Package kpi extracts per-phase biomechanical metrics (KPIs) from a
// swing's pose frames. Every metric is an independent pure function from
// the swing input to an optional KPI; the engine runs every registered
// metric and collects the non-empty results, so registering a new metric
// never changes the behavior of existing ones.
package kpi

import (
	"fmt"

	"github.com/fairway-data/swinglab/internal/swing"
)

// Params holds extraction tuning shared by every metric function.
type Params struct {
	// ConfidenceThreshold is the minimum joint visibility score; samples
	// below it are excluded from phase-window averaging.
	ConfidenceThreshold float64
}

// DefaultParams returns the extraction defaults.
func DefaultParams() Params {
	return Params{ConfidenceThreshold: swing.DefaultConfidenceThreshold}
}

// MetricFunc computes one metric from a swing. It returns nil when the
// metric cannot be computed (missing phase, missing joints, degenerate
// geometry); nil is a soft gap, never an error.
type MetricFunc func(s *swing.SwingInput, p Params) *swing.KPI

// Engine runs a registry of metric functions over a swing.
type Engine struct {
	params  Params
	metrics []MetricFunc
}

// NewEngine creates an engine with the full default metric registry.
func NewEngine(params Params) *Engine {
	e := &Engine{params: params}
	e.metrics = append(e.metrics, defaultMetrics()...)
	return e
}

// NewEmptyEngine creates an engine with no registered metrics. Tests and
// special-purpose callers register their own.
func NewEmptyEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Register appends a metric function to the registry. Extraction output
// preserves registration order.
func (e *Engine) Register(fn MetricFunc) {
	e.metrics = append(e.metrics, fn)
}

// MetricCount returns the number of registered metric functions. The
// extracted KPI count is always between 0 and this value.
func (e *Engine) MetricCount() int {
	return len(e.metrics)
}

// Extract runs every registered metric against the swing and returns the
// non-empty results in registration order. The only failure mode is an
// invalid swing input; individual metrics that cannot be computed are
// silently omitted.
func (e *Engine) Extract(s *swing.SwingInput) ([]swing.KPI, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("kpi extraction: %w", err)
	}
	kpis := make([]swing.KPI, 0, len(e.metrics))
	for _, fn := range e.metrics {
		if k := fn(s, e.params); k != nil {
			kpis = append(kpis, *k)
		}
	}
	return kpis, nil
}

// defaultMetrics returns the standard registry. Order is stable and
// determines output order.
func defaultMetrics() []MetricFunc {
	return []MetricFunc{
		HipHingeAngle,
		KneeFlexionLead,
		KneeFlexionTrail,
		WeightDistributionAddress,
		WeightDistributionImpact,
		SpineAngle,
		ShoulderRotation,
		HipRotation,
		XFactor,
		ReverseSpineAngle,
		LateralSway,
		HeadDrop,
		TempoRatio,
	}
}
