package kinematics

import (
	"math"
	"testing"
)

func velocities(series []SegmentSample) []float64 {
	out := make([]float64, len(series))
	for i, s := range series {
		out[i] = s.VelocityDegPerSec
	}
	return out
}

func TestSmooth_CenteredAverage(t *testing.T) {
	in := []SegmentSample{
		{TimestampMs: 10, VelocityDegPerSec: 1},
		{TimestampMs: 20, VelocityDegPerSec: 2},
		{TimestampMs: 30, VelocityDegPerSec: 3},
		{TimestampMs: 40, VelocityDegPerSec: 4},
		{TimestampMs: 50, VelocityDegPerSec: 5},
	}
	out := Smooth(in, 3)

	// Edges truncate the window, interior samples use the full 3.
	want := []float64{1.5, 2, 3, 4, 4.5}
	got := velocities(out)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("smoothed[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	for i := range out {
		if out[i].TimestampMs != in[i].TimestampMs {
			t.Errorf("timestamp[%d] changed: %v -> %v", i, in[i].TimestampMs, out[i].TimestampMs)
		}
	}
}

func TestSmooth_DampensSpike(t *testing.T) {
	in := []SegmentSample{
		{VelocityDegPerSec: 100},
		{VelocityDegPerSec: 100},
		{VelocityDegPerSec: 900},
		{VelocityDegPerSec: 100},
		{VelocityDegPerSec: 100},
	}
	out := Smooth(in, 3)
	if out[2].VelocityDegPerSec >= 900 {
		t.Errorf("spike not dampened: %v", out[2].VelocityDegPerSec)
	}
	if math.Abs(out[2].VelocityDegPerSec-1100.0/3) > 1e-9 {
		t.Errorf("smoothed spike = %v, want %v", out[2].VelocityDegPerSec, 1100.0/3)
	}
}

func TestSmooth_WindowOneIsIdentity(t *testing.T) {
	in := []SegmentSample{
		{VelocityDegPerSec: 7},
		{VelocityDegPerSec: -3},
	}
	out := Smooth(in, 1)
	for i := range in {
		if out[i].VelocityDegPerSec != in[i].VelocityDegPerSec {
			t.Errorf("window 1 altered sample %d: %v", i, out[i].VelocityDegPerSec)
		}
	}
}

func TestSmooth_Empty(t *testing.T) {
	if out := Smooth(nil, 3); len(out) != 0 {
		t.Errorf("Smooth(nil) returned %d samples", len(out))
	}
}
