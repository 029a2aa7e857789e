package kpi

import (
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/fairway-data/swinglab/internal/geom"
	"github.com/fairway-data/swinglab/internal/swing"
)

// averageJoint time-averages a joint's position over a phase window,
// excluding samples below the confidence threshold. It returns false
// when the joint never appears with sufficient confidence in the window;
// callers omit the affected metric in that case.
func averageJoint(s *swing.SwingInput, ph *swing.Phase, joint string, minConf float64) (r3.Vec, bool) {
	var xs, ys, zs []float64
	for i := ph.StartFrame; i <= ph.EndFrame && i < len(s.Frames); i++ {
		if js, ok := s.Frames[i].Joint(joint, minConf); ok {
			xs = append(xs, js.X)
			ys = append(ys, js.Y)
			zs = append(zs, js.Z)
		}
	}
	if len(xs) == 0 {
		return r3.Vec{}, false
	}
	return r3.Vec{
		X: stat.Mean(xs, nil),
		Y: stat.Mean(ys, nil),
		Z: stat.Mean(zs, nil),
	}, true
}

// centerOf averages the left and right instances of a joint pair (hips,
// shoulders) and returns their midpoint. Both sides must be present.
func centerOf(s *swing.SwingInput, ph *swing.Phase, base string, minConf float64) (r3.Vec, bool) {
	left, okL := averageJoint(s, ph, swing.SideJoint("left", base), minConf)
	right, okR := averageJoint(s, ph, swing.SideJoint("right", base), minConf)
	if !okL || !okR {
		return r3.Vec{}, false
	}
	return geom.Midpoint(left, right), true
}

// lineOf returns the lead-to-trail vector of a joint pair (the shoulder
// line or hip line), averaged over the phase window.
func lineOf(s *swing.SwingInput, ph *swing.Phase, base string, minConf float64) (r3.Vec, bool) {
	lead, okL := averageJoint(s, ph, swing.SideJoint(s.Lead(), base), minConf)
	trail, okT := averageJoint(s, ph, swing.SideJoint(s.Trail(), base), minConf)
	if !okL || !okT {
		return r3.Vec{}, false
	}
	return r3.Sub(lead, trail), true
}
