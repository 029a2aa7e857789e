// Package kinematics analyzes the swing's power-transfer sequence: the
// order and timing in which the pelvis, torso, arms, and club reach
// their peak angular velocity during the downswing. The whole analysis
// is a single linear pass over the frame sequence.
package kinematics

// Segment identifies one of the four analyzed body segments.
type Segment string

const (
	SegmentPelvis Segment = "pelvis"
	SegmentTorso  Segment = "torso"
	SegmentArms   Segment = "arms"
	SegmentClub   Segment = "club"
)

// SegmentOrder is the biomechanically correct proximal-to-distal order
// in which segments should peak.
var SegmentOrder = []Segment{SegmentPelvis, SegmentTorso, SegmentArms, SegmentClub}

// Gap keys in SequenceResult.GapsMs, one per consecutive segment pair.
const (
	GapPelvisTorso = "pelvis_to_torso"
	GapTorsoArms   = "torso_to_arms"
	GapArmsClub    = "arms_to_club"
)

// SegmentSample is one signed angular-velocity observation for a
// segment.
type SegmentSample struct {
	TimestampMs       float64 `json:"timestamp_ms"`
	Segment           Segment `json:"segment"`
	VelocityDegPerSec float64 `json:"velocity_deg_per_sec"`
}

// SequenceResult is the complete kinematic-sequence assessment for one
// swing. Peaks are per-segment and optional: a segment whose velocity
// never clears the noise floor has a nil peak. Series holds the smoothed
// velocity series for visualization.
type SequenceResult struct {
	Peaks           map[Segment]*SegmentSample   `json:"peaks"`
	OrderCorrect    bool                         `json:"order_correct"`
	GapsMs          map[string]float64           `json:"gaps_ms"`
	EfficiencyScore float64                      `json:"efficiency_score"`
	Rating          string                       `json:"rating"`
	Series          map[Segment][]SegmentSample  `json:"series"`
}

// Efficiency rating buckets.
const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingPoor      = "Poor"
)

// Config holds the analyzer tuning.
type Config struct {
	// MinConfidence is the joint visibility floor; samples below it are
	// treated as absent.
	MinConfidence float64

	// SmoothingWindow is the moving-average window (frames) applied to
	// each segment's velocity series to suppress pose-estimation noise.
	SmoothingWindow int

	// NoiseFloorDegPerSec discards velocity samples below this magnitude
	// before peak detection.
	NoiseFloorDegPerSec float64

	// OptimalGapMs is the target spacing between consecutive segment
	// peaks; GapToleranceMs is the band around it that costs only the
	// shallow penalty.
	OptimalGapMs   float64
	GapToleranceMs float64

	// Penalty slopes per millisecond of gap deviation, inside and beyond
	// the tolerance band.
	InTolerancePenaltyPerMs     float64
	BeyondTolerancePenaltyPerMs float64
}

// DefaultConfig returns the analyzer defaults.
func DefaultConfig() Config {
	return Config{
		MinConfidence:               0.5,
		SmoothingWindow:             3,
		NoiseFloorDegPerSec:         30,
		OptimalGapMs:                75,
		GapToleranceMs:              25,
		InTolerancePenaltyPerMs:     0.2,
		BeyondTolerancePenaltyPerMs: 0.5,
	}
}
