package kpi

import (
	"github.com/fairway-data/swinglab/internal/geom"
	"github.com/fairway-data/swinglab/internal/swing"
)

// rotationBetween measures how far a joint-pair line (shoulder line or
// hip line) has rotated at the given phase relative to its address
// baseline, with both vectors projected onto the horizontal plane.
func rotationBetween(s *swing.SwingInput, p Params, base string, phase swing.PhaseName) (float64, bool) {
	addr := s.PhaseByName(swing.P1)
	ph := s.PhaseByName(phase)
	if addr == nil || ph == nil {
		return 0, false
	}
	baseline, okB := lineOf(s, addr, base, p.ConfidenceThreshold)
	current, okC := lineOf(s, ph, base, p.ConfidenceThreshold)
	if !okB || !okC {
		return 0, false
	}
	hb := geom.Horizontal(baseline)
	hc := geom.Horizontal(current)
	if _, ok := geom.Unit(hb); !ok {
		return 0, false
	}
	if _, ok := geom.Unit(hc); !ok {
		return 0, false
	}
	return geom.AngleBetweenDeg(hb, hc), true
}

// ShoulderRotation measures shoulder-line rotation at the top of the
// backswing against the address baseline.
func ShoulderRotation(s *swing.SwingInput, p Params) *swing.KPI {
	rot, ok := rotationBetween(s, p, "shoulder", swing.P4)
	if !ok {
		return nil
	}
	cp := swing.ParamsFor(swing.ClassifyClub(s.Club))
	k := &swing.KPI{
		Phase: swing.P4,
		Name:  swing.MetricShoulderTurn,
		Value: rot,
		Unit:  swing.UnitDegrees,
		Note:  "shoulder turn at the top relative to address",
	}
	if cp.HasFullTurn {
		k.Ideal = &swing.Range{Lo: cp.MinShoulderTurn, Hi: 120}
	}
	return k
}

// HipRotation measures hip-line rotation at the top of the backswing
// against the address baseline.
func HipRotation(s *swing.SwingInput, p Params) *swing.KPI {
	rot, ok := rotationBetween(s, p, "hip", swing.P4)
	if !ok {
		return nil
	}
	return &swing.KPI{
		Phase: swing.P4,
		Name:  swing.MetricHipTurn,
		Value: rot,
		Unit:  swing.UnitDegrees,
		Note:  "hip turn at the top relative to address",
	}
}

// XFactor measures the shoulder-hip separation at the top of the
// backswing. It is omitted whenever either rotation is unavailable.
func XFactor(s *swing.SwingInput, p Params) *swing.KPI {
	shoulders, okS := rotationBetween(s, p, "shoulder", swing.P4)
	hips, okH := rotationBetween(s, p, "hip", swing.P4)
	if !okS || !okH {
		return nil
	}
	cp := swing.ParamsFor(swing.ClassifyClub(s.Club))
	k := &swing.KPI{
		Phase: swing.P4,
		Name:  swing.MetricXFactor,
		Value: shoulders - hips,
		Unit:  swing.UnitDegrees,
		Note:  "shoulder-hip separation at the top",
	}
	if cp.HasFullTurn {
		k.Ideal = &swing.Range{Lo: cp.MinXFactor, Hi: 65}
	}
	return k
}

// ReverseSpineAngle measures the torso's lateral tilt toward the target
// at the top of the backswing. Positive values indicate a reverse spine
// tilt, a common injury-correlated fault.
func ReverseSpineAngle(s *swing.SwingInput, p Params) *swing.KPI {
	ph := s.PhaseByName(swing.P4)
	if ph == nil {
		return nil
	}
	tilt, ok := torsoLateralTilt(s, ph, p)
	if !ok {
		return nil
	}
	return &swing.KPI{
		Phase: swing.P4,
		Name:  swing.MetricReverseSpine,
		// torsoLateralTilt is positive away from the target; reverse
		// spine is the tilt toward it.
		Value: -tilt,
		Unit:  swing.UnitDegrees,
		Note:  "torso tilt toward the target at the top",
	}
}

// LateralSway measures the horizontal drift of the hip-center away from
// the target between address and the top of the backswing, in
// centimeters.
func LateralSway(s *swing.SwingInput, p Params) *swing.KPI {
	addr := s.PhaseByName(swing.P1)
	top := s.PhaseByName(swing.P4)
	if addr == nil || top == nil {
		return nil
	}
	hipAddr, okA := centerOf(s, addr, "hip", p.ConfidenceThreshold)
	hipTop, okT := centerOf(s, top, "hip", p.ConfidenceThreshold)
	if !okA || !okT {
		return nil
	}
	// Positive = drift away from the target (-X).
	swayCm := -(hipTop.X - hipAddr.X) * 100
	cp := swing.ParamsFor(swing.ClassifyClub(s.Club))
	k := &swing.KPI{
		Phase: swing.P4,
		Name:  swing.MetricLateralSway,
		Value: swayCm,
		Unit:  swing.UnitCm,
		Note:  "hip-center drift away from the target during the backswing",
	}
	if cp.HasFullTurn {
		k.Ideal = &swing.Range{Lo: -cp.MaxSwayCm, Hi: cp.MaxSwayCm}
	}
	return k
}

// HeadDrop measures vertical head travel between address and impact, in
// centimeters. Positive values mean the head dropped.
func HeadDrop(s *swing.SwingInput, p Params) *swing.KPI {
	addr := s.PhaseByName(swing.P1)
	impact := s.PhaseByName(swing.P7)
	if addr == nil || impact == nil {
		return nil
	}
	headAddr, okA := averageJoint(s, addr, swing.JointNose, p.ConfidenceThreshold)
	headImp, okI := averageJoint(s, impact, swing.JointNose, p.ConfidenceThreshold)
	if !okA || !okI {
		return nil
	}
	return &swing.KPI{
		Phase: swing.P7,
		Name:  swing.MetricHeadDrop,
		Value: (headAddr.Y - headImp.Y) * 100,
		Unit:  swing.UnitCm,
		Note:  "vertical head travel between address and impact",
	}
}

// TempoRatio measures the backswing-to-downswing duration ratio from the
// phase windows alone. Tour tempo clusters near 3:1.
func TempoRatio(s *swing.SwingInput, p Params) *swing.KPI {
	addr := s.PhaseByName(swing.P1)
	top := s.PhaseByName(swing.P4)
	impact := s.PhaseByName(swing.P7)
	if addr == nil || top == nil || impact == nil {
		return nil
	}
	back := top.StartFrame - addr.EndFrame
	down := impact.StartFrame - top.StartFrame
	if back <= 0 || down <= 0 {
		return nil
	}
	ratio := float64(back) / float64(down)
	category := "balanced"
	switch {
	case ratio < 2.5:
		category = "quick"
	case ratio > 3.5:
		category = "slow"
	}
	return &swing.KPI{
		Phase:    swing.P4,
		Name:     swing.MetricTempoRatio,
		Value:    ratio,
		Category: category,
		Unit:     swing.UnitRatio,
		Ideal:    &swing.Range{Lo: 2.5, Hi: 3.5},
		Note:     "backswing to downswing duration ratio",
	}
}
