package kinematics

import "gonum.org/v1/gonum/floats"

// Smooth applies a centered moving average of the given window to a
// velocity series, leaving timestamps untouched. Windows are truncated
// at the series edges. A window of 1 (or an empty series) returns the
// input unchanged.
func Smooth(series []SegmentSample, window int) []SegmentSample {
	if window <= 1 || len(series) == 0 {
		return series
	}
	half := window / 2
	values := make([]float64, len(series))
	for i, s := range series {
		values[i] = s.VelocityDegPerSec
	}
	out := make([]SegmentSample, len(series))
	for i := range series {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(series)-1 {
			hi = len(series) - 1
		}
		out[i] = series[i]
		out[i].VelocityDegPerSec = floats.Sum(values[lo:hi+1]) / float64(hi-lo+1)
	}
	return out
}
