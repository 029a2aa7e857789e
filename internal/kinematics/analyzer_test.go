package kinematics

import (
	"math"
	"testing"

	"github.com/fairway-data/swinglab/internal/swing"
)

// rotY rotates a point about the vertical axis. Positive angles rotate
// +X toward -Z, which the velocity sign convention reports as positive.
func rotY(x, y, z, deg float64) (float64, float64, float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return x*cos + z*sin, y, -x*sin + z*cos
}

// rotatingSwing builds frames in which the whole upper body rotates
// rigidly about the vertical axis at degPerFrame. All segment lines are
// horizontal so each transition's rotation angle equals degPerFrame
// exactly.
func rotatingSwing(n int, degPerFrame, fps float64) *swing.SwingInput {
	base := map[string][3]float64{
		swing.JointLeftHip:       {0.2, 0.9, 0},
		swing.JointRightHip:      {-0.2, 0.9, 0},
		swing.JointLeftShoulder:  {0.2, 1.4, 0},
		swing.JointRightShoulder: {-0.2, 1.4, 0},
		swing.JointLeftElbow:     {0.3, 1.2, 0},
		swing.JointLeftWrist:     {0.5, 1.2, 0.1},
		swing.JointRightWrist:    {0.1, 1.2, -0.1},
	}
	frames := make([]swing.Frame, n)
	for i := 0; i < n; i++ {
		f := make(swing.Frame, len(base))
		deg := float64(i) * degPerFrame
		for name, p := range base {
			x, y, z := rotY(p[0], p[1], p[2], deg)
			f[name] = swing.JointSample{X: x, Y: y, Z: z, Confidence: 0.9}
		}
		frames[i] = f
	}
	return &swing.SwingInput{
		SessionID:  "kin-test",
		Club:       "7 iron",
		Handedness: swing.RightHanded,
		Frames:     frames,
		FPS:        fps,
	}
}

func TestComputeSeries_ConstantRotation(t *testing.T) {
	s := rotatingSwing(10, 3, 100)
	series := ComputeSeries(s, DefaultConfig())

	// Line segments yield one sample per transition; the club proxy
	// needs two consecutive wrist-center displacements, so it starts
	// one frame later.
	wantLen := map[Segment]int{
		SegmentPelvis: 9,
		SegmentTorso:  9,
		SegmentArms:   9,
		SegmentClub:   8,
	}
	for seg, want := range wantLen {
		if got := len(series[seg]); got != want {
			t.Errorf("%s series length = %d, want %d", seg, got, want)
		}
	}

	// 3 deg/frame at 100fps is 300 deg/s for every segment.
	for seg, samples := range series {
		for _, smp := range samples {
			if math.Abs(smp.VelocityDegPerSec-300) > 1e-6 {
				t.Errorf("%s velocity at %vms = %v, want 300", seg, smp.TimestampMs, smp.VelocityDegPerSec)
			}
		}
	}

	if series[SegmentPelvis][0].TimestampMs != s.FrameTimeMs(1) {
		t.Errorf("first pelvis timestamp = %v, want %v", series[SegmentPelvis][0].TimestampMs, s.FrameTimeMs(1))
	}
}

func TestComputeSeries_NegativeRotation(t *testing.T) {
	s := rotatingSwing(6, -4, 50)
	series := ComputeSeries(s, DefaultConfig())
	for _, smp := range series[SegmentPelvis] {
		if math.Abs(smp.VelocityDegPerSec+200) > 1e-6 {
			t.Errorf("velocity = %v, want -200", smp.VelocityDegPerSec)
		}
	}
}

func TestComputeSeries_MissingJointsOmitTransitions(t *testing.T) {
	s := rotatingSwing(8, 3, 100)
	for i := range s.Frames {
		delete(s.Frames[i], swing.JointLeftElbow)
	}
	series := ComputeSeries(s, DefaultConfig())
	if len(series[SegmentArms]) != 0 {
		t.Errorf("arms series length = %d, want 0 without elbows", len(series[SegmentArms]))
	}
	if len(series[SegmentPelvis]) != 7 {
		t.Errorf("pelvis series length = %d, want 7", len(series[SegmentPelvis]))
	}
}

func TestComputeSeries_LowConfidenceWrists(t *testing.T) {
	s := rotatingSwing(8, 3, 100)
	for i := range s.Frames {
		j := s.Frames[i][swing.JointRightWrist]
		j.Confidence = 0.1
		s.Frames[i][swing.JointRightWrist] = j
	}
	series := ComputeSeries(s, DefaultConfig())
	if len(series[SegmentClub]) != 0 {
		t.Errorf("club series length = %d, want 0 with untrusted trail wrist", len(series[SegmentClub]))
	}
}

func TestAnalyze_FullPipeline(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), nil)
	res, err := a.Analyze(rotatingSwing(12, 3, 100))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, seg := range SegmentOrder {
		p := res.Peaks[seg]
		if p == nil {
			t.Fatalf("%s peak = nil", seg)
		}
		if p.VelocityDegPerSec < 299 || p.VelocityDegPerSec > 301 {
			t.Errorf("%s peak velocity = %v, want about 300", seg, p.VelocityDegPerSec)
		}
	}
	if res.Rating == "" {
		t.Error("Rating not populated")
	}
}

func TestAnalyze_MissingSegmentFailsOrder(t *testing.T) {
	s := rotatingSwing(12, 3, 100)
	for i := range s.Frames {
		delete(s.Frames[i], swing.JointLeftElbow)
	}
	a := NewAnalyzer(DefaultConfig(), nil)
	res, err := a.Analyze(s)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.OrderCorrect {
		t.Error("OrderCorrect = true with no arm data")
	}
	if res.EfficiencyScore != 0 {
		t.Errorf("EfficiencyScore = %v, want 0", res.EfficiencyScore)
	}
}

func TestAnalyze_InvalidInput(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), nil)
	if _, err := a.Analyze(&swing.SwingInput{FPS: 120}); err == nil {
		t.Error("Analyze with no frames succeeded, want error")
	}
}
