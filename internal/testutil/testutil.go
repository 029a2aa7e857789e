// Package testutil builds synthetic swing inputs with known geometry so
// package tests can assert exact metric values. All builders use the
// capture coordinate convention (+Y up, +X toward the target, +Z toward
// the camera) and a right-handed golfer unless configured otherwise.
package testutil

import (
	"math"

	"github.com/fairway-data/swinglab/internal/swing"
)

// Body segment lengths (meters) used by the synthetic skeleton.
const (
	shankLen = 0.45
	thighLen = 0.50
	torsoLen = 0.55
)

// PostureSpec configures a synthetic address posture.
type PostureSpec struct {
	// HingeDeg is the torso tilt from vertical, leaning toward the ball
	// (+Z).
	HingeDeg float64
	// KneeFlexDeg is the flexion of both knees (180 minus the
	// hip-knee-ankle vertex angle). Exact only at 50% weight; a shifted
	// hip-center skews the vertex slightly.
	KneeFlexDeg float64
	// WeightPct is the percentage of weight toward the lead foot.
	WeightPct float64
	// StanceWidthM is the ankle-to-ankle distance. Zero means zero
	// stance width (both ankles coincident).
	StanceWidthM float64
	// Confidence applies to every joint. Zero defaults to 0.9.
	Confidence float64
}

// DefaultPosture is a neutral iron address: 35 degree hinge, 20 degree
// knee flex, 50/50 weight.
func DefaultPosture() PostureSpec {
	return PostureSpec{HingeDeg: 35, KneeFlexDeg: 20, WeightPct: 50, StanceWidthM: 0.4, Confidence: 0.9}
}

func (p PostureSpec) confidence() float64 {
	if p.Confidence == 0 {
		return 0.9
	}
	return p.Confidence
}

type point struct{ x, y, z float64 }

// rotateX rotates p's YZ components by deg degrees about the X axis.
func rotateX(p point, deg float64) point {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return point{x: p.x, y: p.y*cos - p.z*sin, z: p.y*sin + p.z*cos}
}

// skeleton holds the joint positions of one synthetic frame.
type skeleton map[string]point

// addressSkeleton builds a right-handed address posture. Lead (left)
// ankle sits at +X, trail at -X.
func addressSkeleton(spec PostureSpec) skeleton {
	half := spec.StanceWidthM / 2
	sk := skeleton{}

	sk[swing.JointLeftAnkle] = point{x: half}
	sk[swing.JointRightAnkle] = point{x: -half}

	// Each leg is built in its ankle's YZ plane: knee above the ankle,
	// hip from rotating the knee-to-ankle direction by the vertex angle.
	vertex := 180 - spec.KneeFlexDeg
	for _, side := range []string{"left", "right"} {
		ankle := sk[swing.SideJoint(side, "ankle")]
		knee := point{x: ankle.x, y: ankle.y + shankLen, z: ankle.z + 0.05}
		down := point{y: ankle.y - knee.y, z: ankle.z - knee.z}
		up := rotateX(down, vertex)
		n := math.Hypot(up.y, up.z)
		sk[swing.SideJoint(side, "knee")] = knee
		sk[swing.SideJoint(side, "hip")] = point{
			x: knee.x,
			y: knee.y + thighLen*up.y/n,
			z: knee.z + thighLen*up.z/n,
		}
	}

	// Shift hips along the stance axis for the requested weight split.
	shift := (spec.WeightPct/100 - 0.5) * spec.StanceWidthM
	for _, side := range []string{"left", "right"} {
		hip := sk[swing.SideJoint(side, "hip")]
		hip.x += shift
		sk[swing.SideJoint(side, "hip")] = hip
	}

	// Torso leans toward the ball by the hinge angle.
	lHip := sk[swing.JointLeftHip]
	rHip := sk[swing.JointRightHip]
	hipCenter := point{x: (lHip.x + rHip.x) / 2, y: (lHip.y + rHip.y) / 2, z: (lHip.z + rHip.z) / 2}
	rad := spec.HingeDeg * math.Pi / 180
	shoulderCenter := point{
		x: hipCenter.x,
		y: hipCenter.y + torsoLen*math.Cos(rad),
		z: hipCenter.z + torsoLen*math.Sin(rad),
	}
	sk[swing.JointLeftShoulder] = point{x: shoulderCenter.x + 0.2, y: shoulderCenter.y, z: shoulderCenter.z}
	sk[swing.JointRightShoulder] = point{x: shoulderCenter.x - 0.2, y: shoulderCenter.y, z: shoulderCenter.z}
	sk[swing.JointNose] = point{x: shoulderCenter.x, y: shoulderCenter.y + 0.25, z: shoulderCenter.z + 0.05}

	// Arms hang toward the ball from the shoulders.
	for _, side := range []string{"left", "right"} {
		sh := sk[swing.SideJoint(side, "shoulder")]
		elbow := point{x: sh.x, y: sh.y - 0.25, z: sh.z + 0.10}
		inward := 0.1
		if side == "left" {
			inward = -0.1
		}
		sk[swing.SideJoint(side, "elbow")] = elbow
		sk[swing.SideJoint(side, "wrist")] = point{x: elbow.x + inward, y: elbow.y - 0.22, z: elbow.z + 0.10}
	}

	return sk
}

func (sk skeleton) frame(confidence float64) swing.Frame {
	f := make(swing.Frame, len(sk))
	for name, p := range sk {
		f[name] = swing.JointSample{X: p.x, Y: p.y, Z: p.z, Confidence: confidence}
	}
	return f
}

// AddressFrame builds one address-posture frame.
func AddressFrame(spec PostureSpec) swing.Frame {
	return addressSkeleton(spec).frame(spec.confidence())
}

// TopSpec configures the synthetic top-of-backswing position relative
// to an address posture.
type TopSpec struct {
	// ShoulderTurnDeg rotates the shoulder line about the vertical axis
	// through the shoulder center.
	ShoulderTurnDeg float64
	// HipTurnDeg rotates the hip line about the vertical axis through
	// the hip center.
	HipTurnDeg float64
	// SwayCm shifts the whole pelvis away from the target.
	SwayCm float64
	// ReverseTiltDeg tilts the torso toward the target.
	ReverseTiltDeg float64
}

// TopFrame builds a top-of-backswing frame by rotating the address
// skeleton's shoulder and hip lines.
func TopFrame(spec PostureSpec, top TopSpec) swing.Frame {
	sk := addressSkeleton(spec)

	rotateAboutY := func(center point, joints []string, deg float64) {
		rad := deg * math.Pi / 180
		sin, cos := math.Sin(rad), math.Cos(rad)
		for _, j := range joints {
			p := sk[j]
			dx, dz := p.x-center.x, p.z-center.z
			sk[j] = point{x: center.x + dx*cos + dz*sin, y: p.y, z: center.z - dx*sin + dz*cos}
		}
	}

	lSh, rSh := sk[swing.JointLeftShoulder], sk[swing.JointRightShoulder]
	shoulderCenter := point{x: (lSh.x + rSh.x) / 2, y: (lSh.y + rSh.y) / 2, z: (lSh.z + rSh.z) / 2}
	rotateAboutY(shoulderCenter, []string{swing.JointLeftShoulder, swing.JointRightShoulder}, top.ShoulderTurnDeg)

	lHip, rHip := sk[swing.JointLeftHip], sk[swing.JointRightHip]
	hipCenter := point{x: (lHip.x + rHip.x) / 2, y: (lHip.y + rHip.y) / 2, z: (lHip.z + rHip.z) / 2}
	rotateAboutY(hipCenter, []string{swing.JointLeftHip, swing.JointRightHip}, top.HipTurnDeg)

	if top.SwayCm != 0 {
		// Away from the target is -X.
		for _, j := range []string{swing.JointLeftHip, swing.JointRightHip} {
			p := sk[j]
			p.x -= top.SwayCm / 100
			sk[j] = p
		}
	}

	if top.ReverseTiltDeg != 0 {
		// Re-home the shoulder center toward the target so the torso
		// vector gains a +X component of torsoLen*sin(tilt).
		dx := torsoLen * math.Sin(top.ReverseTiltDeg*math.Pi/180)
		for _, j := range []string{swing.JointLeftShoulder, swing.JointRightShoulder, swing.JointNose} {
			p := sk[j]
			p.x += dx
			sk[j] = p
		}
	}

	return sk.frame(spec.confidence())
}

// Builder assembles a SwingInput frame by frame.
type Builder struct {
	input swing.SwingInput
}

// NewSwing starts a builder with the given frame rate and an iron as the
// default club.
func NewSwing(fps float64) *Builder {
	return &Builder{input: swing.SwingInput{
		SessionID:  "test-session",
		UserID:     "test-user",
		Club:       "7 iron",
		Handedness: swing.RightHanded,
		FPS:        fps,
	}}
}

// Session overrides the session id.
func (b *Builder) Session(id string) *Builder {
	b.input.SessionID = id
	return b
}

// Club overrides the club name.
func (b *Builder) Club(name string) *Builder {
	b.input.Club = name
	return b
}

// Handedness overrides the golfer's handedness.
func (b *Builder) Handedness(h swing.Handedness) *Builder {
	b.input.Handedness = h
	return b
}

// Frames appends frames in order.
func (b *Builder) Frames(frames ...swing.Frame) *Builder {
	b.input.Frames = append(b.input.Frames, frames...)
	return b
}

// Repeat appends n copies of a frame.
func (b *Builder) Repeat(f swing.Frame, n int) *Builder {
	for i := 0; i < n; i++ {
		b.input.Frames = append(b.input.Frames, f)
	}
	return b
}

// Phase appends a phase window.
func (b *Builder) Phase(name swing.PhaseName, start, end int) *Builder {
	b.input.Phases = append(b.input.Phases, swing.Phase{Name: name, StartFrame: start, EndFrame: end})
	return b
}

// Build returns the assembled input.
func (b *Builder) Build() *swing.SwingInput {
	return &b.input
}
