// Package swing defines the shared data model for golf-swing analysis:
// pose frames, swing phases, extracted KPIs, and the club vocabulary.
//
// Coordinate convention: +Y points up, +X points down the target line
// (toward the target), +Z points from the golfer toward the camera. The
// horizontal plane is therefore XZ and the vertical axis is +Y.
package swing

import (
	"fmt"
)

// DefaultConfidenceThreshold is the visibility score below which a joint
// sample is treated as absent everywhere downstream.
const DefaultConfidenceThreshold = 0.5

// JointSample is a single 3D joint observation from the pose estimator.
// Confidence is the estimator's visibility score in [0,1]; samples below
// the configured threshold are discarded by every consumer.
type JointSample struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Confidence float64 `json:"confidence"`
}

// Frame maps joint names to samples for one capture instant. Frames are
// sparse: the estimator may drop any joint on any frame.
type Frame map[string]JointSample

// Joint returns the named sample if present with confidence at or above
// minConfidence. A confidence threshold of 0 accepts every sample.
func (f Frame) Joint(name string, minConfidence float64) (JointSample, bool) {
	s, ok := f[name]
	if !ok || s.Confidence < minConfidence {
		return JointSample{}, false
	}
	return s, true
}

// Handedness identifies which side of the body leads the swing.
type Handedness string

const (
	// RightHanded golfers lead with the left side.
	RightHanded Handedness = "right"
	// LeftHanded golfers lead with the right side.
	LeftHanded Handedness = "left"
)

// SwingInput is one captured swing: an ordered frame sequence, the phase
// checkpoints segmenting it, and session context. Inputs are immutable
// once constructed; every analysis pass only reads them.
type SwingInput struct {
	SessionID  string     `json:"session_id"`
	UserID     string     `json:"user_id"`
	Club       string     `json:"club"`
	Handedness Handedness `json:"handedness"`
	Frames     []Frame    `json:"frames"`
	Phases     []Phase    `json:"phases"`
	FPS        float64    `json:"fps"`
}

// Validate checks the hard input invariants: a non-empty frame sequence,
// a positive frame rate, and ordered in-bounds phase windows. These are
// the only conditions the pipeline surfaces as errors; every other gap
// (missing joints, missing phases) degrades softly downstream.
func (s *SwingInput) Validate() error {
	if len(s.Frames) == 0 {
		return fmt.Errorf("swing %q: empty frame sequence", s.SessionID)
	}
	if s.FPS <= 0 {
		return fmt.Errorf("swing %q: frame rate must be positive, got %v", s.SessionID, s.FPS)
	}
	prevStart := -1
	for _, p := range s.Phases {
		if p.StartFrame < 0 || p.EndFrame >= len(s.Frames) || p.StartFrame > p.EndFrame {
			return fmt.Errorf("swing %q: phase %s window [%d,%d] out of bounds for %d frames",
				s.SessionID, p.Name, p.StartFrame, p.EndFrame, len(s.Frames))
		}
		if p.StartFrame < prevStart {
			return fmt.Errorf("swing %q: phase %s starts before preceding phase", s.SessionID, p.Name)
		}
		prevStart = p.StartFrame
	}
	return nil
}

// Lead returns the hand/side prefix ("left" or "right") of the lead side
// for the swing's handedness. Handedness is an explicit input; it is
// never inferred from joint geometry. An unset value defaults to
// right-handed.
func (s *SwingInput) Lead() string {
	if s.Handedness == LeftHanded {
		return "right"
	}
	return "left"
}

// Trail returns the side prefix of the trail side.
func (s *SwingInput) Trail() string {
	if s.Handedness == LeftHanded {
		return "left"
	}
	return "right"
}

// FrameTimeMs converts a frame index to a timestamp in milliseconds from
// the start of the capture.
func (s *SwingInput) FrameTimeMs(idx int) float64 {
	return float64(idx) * 1000.0 / s.FPS
}
