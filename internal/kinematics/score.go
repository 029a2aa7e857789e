package kinematics

import "math"

// EvaluateSequence runs peak detection, sequence-order validation, gap
// timing, and efficiency scoring over smoothed per-segment velocity
// series. It is exposed separately from Analyze so synthetic series can
// be assessed directly.
func EvaluateSequence(series map[Segment][]SegmentSample, cfg Config) *SequenceResult {
	res := &SequenceResult{
		Peaks:  make(map[Segment]*SegmentSample, len(SegmentOrder)),
		GapsMs: make(map[string]float64, len(SegmentOrder)-1),
		Series: series,
	}

	for _, seg := range SegmentOrder {
		res.Peaks[seg] = detectPeak(series[seg], cfg.NoiseFloorDegPerSec)
	}

	res.OrderCorrect = orderCorrect(res.Peaks)

	gapKeys := []string{GapPelvisTorso, GapTorsoArms, GapArmsClub}
	for i := 0; i+1 < len(SegmentOrder); i++ {
		a := res.Peaks[SegmentOrder[i]]
		b := res.Peaks[SegmentOrder[i+1]]
		if a != nil && b != nil {
			res.GapsMs[gapKeys[i]] = b.TimestampMs - a.TimestampMs
		}
	}

	res.EfficiencyScore = efficiencyScore(res, cfg)
	res.Rating = rating(res.EfficiencyScore)
	return res
}

// detectPeak selects the sample of maximum absolute velocity after
// discarding samples below the noise floor. It returns nil when no
// sample survives.
func detectPeak(series []SegmentSample, noiseFloor float64) *SegmentSample {
	var peak *SegmentSample
	for i := range series {
		mag := math.Abs(series[i].VelocityDegPerSec)
		if mag < noiseFloor {
			continue
		}
		if peak == nil || mag > math.Abs(peak.VelocityDegPerSec) {
			peak = &series[i]
		}
	}
	if peak == nil {
		return nil
	}
	p := *peak
	return &p
}

// orderCorrect holds only when all four peaks exist and their timestamps
// are non-decreasing in proximal-to-distal order.
func orderCorrect(peaks map[Segment]*SegmentSample) bool {
	prev := math.Inf(-1)
	for _, seg := range SegmentOrder {
		p := peaks[seg]
		if p == nil {
			return false
		}
		if p.TimestampMs < prev {
			return false
		}
		prev = p.TimestampMs
	}
	return true
}

// efficiencyScore starts at 100 and charges each gap's deviation from
// the optimal spacing: a shallow linear penalty inside the tolerance
// band and a steeper one beyond it. An invalid order forces 0.
func efficiencyScore(res *SequenceResult, cfg Config) float64 {
	if !res.OrderCorrect {
		return 0
	}
	score := 100.0
	for _, gap := range res.GapsMs {
		dev := math.Abs(gap - cfg.OptimalGapMs)
		if dev <= cfg.GapToleranceMs {
			score -= dev * cfg.InTolerancePenaltyPerMs
		} else {
			score -= cfg.GapToleranceMs*cfg.InTolerancePenaltyPerMs +
				(dev-cfg.GapToleranceMs)*cfg.BeyondTolerancePenaltyPerMs
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

// rating buckets an efficiency score.
func rating(score float64) string {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 75:
		return RatingGood
	case score >= 60:
		return RatingFair
	default:
		return RatingPoor
	}
}
