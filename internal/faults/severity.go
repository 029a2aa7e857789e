package faults

import "math"

// SeverityFunc maps an observed value and its violated condition to a
// severity estimate in [0,1]. Severity policy is configured per rule
// rather than inferred from the condition type; the engine additionally
// applies the club category's severity modifier and clamps the result.
type SeverityFunc func(observed float64, c Condition) float64

// boundaryDistance returns how far the observed value lies beyond the
// condition's nearest boundary, and that boundary's value.
func boundaryDistance(observed float64, c Condition) (dist, boundary float64) {
	switch c.Kind {
	case ConditionOutsideRange:
		if observed < c.Lo {
			return c.Lo - observed, c.Lo
		}
		return observed - c.Hi, c.Hi
	case ConditionLessThan:
		return c.Threshold - observed, c.Threshold
	case ConditionGreaterThan:
		return observed - c.Threshold, c.Threshold
	default:
		return 0, 0
	}
}

// RelativeSeverity scales severity by the overshoot relative to the
// violated boundary: an observation scale-times beyond the boundary
// saturates at 1. Suitable for metrics whose boundary is far from zero
// (angles, percentages).
func RelativeSeverity(scale float64) SeverityFunc {
	return func(observed float64, c Condition) float64 {
		dist, boundary := boundaryDistance(observed, c)
		if dist <= 0 || math.Abs(boundary) < 1e-9 {
			return 0
		}
		return clamp01(dist / (math.Abs(boundary) * scale))
	}
}

// AbsoluteSeverity scales severity linearly with the absolute deviation
// beyond the boundary, saturating at maxDeviation. Suitable for metrics
// measured from a zero baseline (sway, head travel).
func AbsoluteSeverity(maxDeviation float64) SeverityFunc {
	return func(observed float64, c Condition) float64 {
		dist, _ := boundaryDistance(observed, c)
		if dist <= 0 || maxDeviation <= 0 {
			return 0
		}
		return clamp01(dist / maxDeviation)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
