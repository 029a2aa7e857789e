package kpi

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fairway-data/swinglab/internal/geom"
	"github.com/fairway-data/swinglab/internal/swing"
)

// HipHingeAngle measures the forward tilt of the torso vector
// (hip-center to shoulder-center) from the global vertical axis at
// address.
func HipHingeAngle(s *swing.SwingInput, p Params) *swing.KPI {
	ph := s.PhaseByName(swing.P1)
	if ph == nil {
		return nil
	}
	hip, okH := centerOf(s, ph, "hip", p.ConfidenceThreshold)
	shoulder, okS := centerOf(s, ph, "shoulder", p.ConfidenceThreshold)
	if !okH || !okS {
		return nil
	}
	torso := r3.Sub(shoulder, hip)
	if _, ok := geom.Unit(torso); !ok {
		return nil
	}
	cp := swing.ParamsFor(swing.ClassifyClub(s.Club))
	return &swing.KPI{
		Phase: swing.P1,
		Name:  swing.MetricHipHinge,
		Value: geom.AngleBetweenDeg(torso, geom.Up),
		Unit:  swing.UnitDegrees,
		Ideal: &swing.Range{Lo: cp.HingeLo, Hi: cp.HingeHi},
		Note:  "forward tilt of the torso from vertical at address",
	}
}

// KneeFlexionLead measures lead-knee flexion at address as 180 degrees
// minus the hip-knee-ankle vertex angle.
func KneeFlexionLead(s *swing.SwingInput, p Params) *swing.KPI {
	return kneeFlexion(s, p, s.Lead(), swing.MetricKneeFlexLead)
}

// KneeFlexionTrail measures trail-knee flexion at address.
func KneeFlexionTrail(s *swing.SwingInput, p Params) *swing.KPI {
	return kneeFlexion(s, p, s.Trail(), swing.MetricKneeFlexTrail)
}

func kneeFlexion(s *swing.SwingInput, p Params, side, metric string) *swing.KPI {
	ph := s.PhaseByName(swing.P1)
	if ph == nil {
		return nil
	}
	hip, okH := averageJoint(s, ph, swing.SideJoint(side, "hip"), p.ConfidenceThreshold)
	knee, okK := averageJoint(s, ph, swing.SideJoint(side, "knee"), p.ConfidenceThreshold)
	ankle, okA := averageJoint(s, ph, swing.SideJoint(side, "ankle"), p.ConfidenceThreshold)
	if !okH || !okK || !okA {
		return nil
	}
	cp := swing.ParamsFor(swing.ClassifyClub(s.Club))
	return &swing.KPI{
		Phase: swing.P1,
		Name:  metric,
		Value: 180 - geom.VertexAngleDeg(hip, knee, ankle),
		Unit:  swing.UnitDegrees,
		Ideal: &swing.Range{Lo: cp.KneeFlexLo, Hi: cp.KneeFlexHi},
		Note:  side + " knee flexion at address",
	}
}

// WeightDistributionAddress estimates the percentage of weight toward
// the lead foot at address by projecting the hip-center onto the
// ankle-to-ankle axis in the horizontal plane. A zero stance width
// (coincident ankles) omits the metric rather than dividing by zero.
func WeightDistributionAddress(s *swing.SwingInput, p Params) *swing.KPI {
	cp := swing.ParamsFor(swing.ClassifyClub(s.Club))
	return weightDistribution(s, p, swing.P1, swing.MetricWeightDist,
		&swing.Range{Lo: cp.WeightLo, Hi: cp.WeightHi}, "weight toward the lead foot at address")
}

// WeightDistributionImpact applies the same estimator at impact, where
// good strikes carry most of the weight onto the lead side.
func WeightDistributionImpact(s *swing.SwingInput, p Params) *swing.KPI {
	cp := swing.ParamsFor(swing.ClassifyClub(s.Club))
	return weightDistribution(s, p, swing.P7, swing.MetricWeightDistImp,
		&swing.Range{Lo: cp.ImpactWeightLo, Hi: cp.ImpactWeightHi}, "weight toward the lead foot at impact")
}

func weightDistribution(s *swing.SwingInput, p Params, phase swing.PhaseName, metric string, ideal *swing.Range, note string) *swing.KPI {
	ph := s.PhaseByName(phase)
	if ph == nil {
		return nil
	}
	leadAnkle, okL := averageJoint(s, ph, swing.SideJoint(s.Lead(), "ankle"), p.ConfidenceThreshold)
	trailAnkle, okT := averageJoint(s, ph, swing.SideJoint(s.Trail(), "ankle"), p.ConfidenceThreshold)
	hip, okH := centerOf(s, ph, "hip", p.ConfidenceThreshold)
	if !okL || !okT || !okH {
		return nil
	}
	axis := geom.Horizontal(r3.Sub(leadAnkle, trailAnkle))
	unit, ok := geom.Unit(axis)
	if !ok {
		// Zero stance width: the projection is undefined.
		return nil
	}
	width := r3.Norm(axis)
	t := r3.Dot(geom.Horizontal(r3.Sub(hip, trailAnkle)), unit) / width
	pct := t * 100
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	return &swing.KPI{
		Phase: phase,
		Name:  metric,
		Value: pct,
		Unit:  swing.UnitPercent,
		Ideal: ideal,
		Note:  note,
	}
}

// SpineAngle measures the frontal-plane (lateral) tilt of the torso at
// address, signed positive when the spine tilts away from the target.
func SpineAngle(s *swing.SwingInput, p Params) *swing.KPI {
	ph := s.PhaseByName(swing.P1)
	if ph == nil {
		return nil
	}
	tilt, ok := torsoLateralTilt(s, ph, p)
	if !ok {
		return nil
	}
	return &swing.KPI{
		Phase: swing.P1,
		Name:  swing.MetricSpineAngle,
		Value: tilt,
		Unit:  swing.UnitDegrees,
		Note:  "lateral spine tilt at address, positive away from the target",
	}
}

// torsoLateralTilt returns the torso's tilt within the frontal (XY)
// plane, in degrees, signed positive when the tilt is away from the
// target (-X).
func torsoLateralTilt(s *swing.SwingInput, ph *swing.Phase, p Params) (float64, bool) {
	hip, okH := centerOf(s, ph, "hip", p.ConfidenceThreshold)
	shoulder, okS := centerOf(s, ph, "shoulder", p.ConfidenceThreshold)
	if !okH || !okS {
		return 0, false
	}
	torso := r3.Sub(shoulder, hip)
	frontal := geom.ProjectOntoPlane(torso, r3.Vec{Z: 1})
	if _, ok := geom.Unit(frontal); !ok {
		return 0, false
	}
	tilt := geom.AngleBetweenDeg(frontal, geom.Up)
	if frontal.X > 0 {
		tilt = -tilt
	}
	return tilt, true
}
