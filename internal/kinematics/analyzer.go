package kinematics

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fairway-data/swinglab/internal/geom"
	"github.com/fairway-data/swinglab/internal/swing"
)

// Analyzer computes kinematic sequence results. It is stateless apart
// from an optionally injected cache; independent swings may be analyzed
// concurrently.
type Analyzer struct {
	cfg   Config
	cache SequenceCache
}

// NewAnalyzer creates an analyzer. cache may be nil, in which case every
// call recomputes.
func NewAnalyzer(cfg Config, cache SequenceCache) *Analyzer {
	if cfg.SmoothingWindow < 1 {
		cfg.SmoothingWindow = 1
	}
	return &Analyzer{cfg: cfg, cache: cache}
}

// Analyze computes the sequence result for a swing. The only error is an
// invalid input; every missing-data condition degrades to omitted
// samples or nil peaks.
func (a *Analyzer) Analyze(s *swing.SwingInput) (*SequenceResult, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("kinematic analysis: %w", err)
	}
	raw := ComputeSeries(s, a.cfg)
	smoothed := make(map[Segment][]SegmentSample, len(raw))
	for seg, series := range raw {
		smoothed[seg] = Smooth(series, a.cfg.SmoothingWindow)
	}
	return EvaluateSequence(smoothed, a.cfg), nil
}

// AnalyzeCached returns the cached result for the swing's session id
// when present, computing and caching otherwise. Callers that mutate a
// session's underlying frames are responsible for evicting the stale
// entry first.
func (a *Analyzer) AnalyzeCached(s *swing.SwingInput) (*SequenceResult, error) {
	if a.cache == nil {
		return a.Analyze(s)
	}
	if res, ok := a.cache.Get(s.SessionID); ok {
		return res, nil
	}
	res, err := a.Analyze(s)
	if err != nil {
		return nil, err
	}
	a.cache.Put(s.SessionID, res)
	return res, nil
}

// ComputeSeries derives each segment's signed angular-velocity series
// from the raw frames. For each frame transition the segment's direction
// vectors are normalized, the arccosine of their dot product gives the
// rotation angle, division by the frame period gives speed, and the
// cross product against the vertical axis gives the sign. Transitions
// with missing joints or degenerate vectors are omitted.
func ComputeSeries(s *swing.SwingInput, cfg Config) map[Segment][]SegmentSample {
	dirs := segmentDirections(s, cfg.MinConfidence)
	series := make(map[Segment][]SegmentSample, len(SegmentOrder))
	for _, seg := range SegmentOrder {
		series[seg] = velocitySeries(s, seg, dirs[seg])
	}
	return series
}

// dirSample is a segment direction vector at one frame index.
type dirSample struct {
	dir r3.Vec
	ok  bool
}

// segmentDirections extracts per-frame direction vectors for every
// segment in one pass over the frames.
func segmentDirections(s *swing.SwingInput, minConf float64) map[Segment][]dirSample {
	n := len(s.Frames)
	dirs := map[Segment][]dirSample{
		SegmentPelvis: make([]dirSample, n),
		SegmentTorso:  make([]dirSample, n),
		SegmentArms:   make([]dirSample, n),
		SegmentClub:   make([]dirSample, n),
	}

	lead, trail := s.Lead(), s.Trail()
	wristCenters := make([]dirSample, n)

	for i, f := range s.Frames {
		dirs[SegmentPelvis][i] = jointLine(f, swing.SideJoint(lead, "hip"), swing.SideJoint(trail, "hip"), minConf)
		dirs[SegmentTorso][i] = jointLine(f, swing.SideJoint(lead, "shoulder"), swing.SideJoint(trail, "shoulder"), minConf)
		dirs[SegmentArms][i] = jointLine(f, swing.SideJoint(lead, "wrist"), swing.SideJoint(lead, "elbow"), minConf)

		lw, okL := f.Joint(swing.SideJoint(lead, "wrist"), minConf)
		tw, okT := f.Joint(swing.SideJoint(trail, "wrist"), minConf)
		if okL && okT {
			wristCenters[i] = dirSample{
				dir: geom.Midpoint(vec(lw), vec(tw)),
				ok:  true,
			}
		}
	}

	// Club proxy: the wrist-center displacement direction between
	// consecutive frames, assigned to the later frame.
	for i := 1; i < n; i++ {
		if wristCenters[i-1].ok && wristCenters[i].ok {
			d := r3.Sub(wristCenters[i].dir, wristCenters[i-1].dir)
			if u, ok := geom.Unit(d); ok {
				dirs[SegmentClub][i] = dirSample{dir: u, ok: true}
			}
		}
	}

	return dirs
}

// jointLine builds the direction vector between two joints of a frame.
func jointLine(f swing.Frame, from, to string, minConf float64) dirSample {
	a, okA := f.Joint(from, minConf)
	b, okB := f.Joint(to, minConf)
	if !okA || !okB {
		return dirSample{}
	}
	u, ok := geom.Unit(r3.Sub(vec(a), vec(b)))
	if !ok {
		return dirSample{}
	}
	return dirSample{dir: u, ok: true}
}

func vec(j swing.JointSample) r3.Vec {
	return r3.Vec{X: j.X, Y: j.Y, Z: j.Z}
}

// velocitySeries converts a segment's per-frame directions into signed
// angular velocities across consecutive-frame transitions.
func velocitySeries(s *swing.SwingInput, seg Segment, dirs []dirSample) []SegmentSample {
	if len(dirs) < 2 {
		return nil
	}
	out := make([]SegmentSample, 0, len(dirs)-1)
	for i := 1; i < len(dirs); i++ {
		prev, cur := dirs[i-1], dirs[i]
		if !prev.ok || !cur.ok {
			continue
		}
		angle := geom.AngleBetweenDeg(prev.dir, cur.dir)
		v := angle * s.FPS
		if r3.Dot(r3.Cross(prev.dir, cur.dir), geom.Up) < 0 {
			v = -v
		}
		out = append(out, SegmentSample{
			TimestampMs:       s.FrameTimeMs(i),
			Segment:           seg,
			VelocityDegPerSec: v,
		})
	}
	return out
}
