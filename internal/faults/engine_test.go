package faults

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairway-data/swinglab/internal/swing"
)

// ironAddressKPIs is a full KPI set sitting comfortably inside every
// iron threshold.
func ironAddressKPIs() []swing.KPI {
	return []swing.KPI{
		{Phase: swing.P1, Name: swing.MetricHipHinge, Value: 35, Unit: swing.UnitDegrees},
		{Phase: swing.P1, Name: swing.MetricKneeFlexLead, Value: 20, Unit: swing.UnitDegrees},
		{Phase: swing.P1, Name: swing.MetricKneeFlexTrail, Value: 22, Unit: swing.UnitDegrees},
		{Phase: swing.P1, Name: swing.MetricWeightDist, Value: 52, Unit: swing.UnitPercent},
		{Phase: swing.P4, Name: swing.MetricShoulderTurn, Value: 92, Unit: swing.UnitDegrees},
		{Phase: swing.P4, Name: swing.MetricXFactor, Value: 40, Unit: swing.UnitDegrees},
		{Phase: swing.P4, Name: swing.MetricLateralSway, Value: 3, Unit: swing.UnitCm},
		{Phase: swing.P4, Name: swing.MetricReverseSpine, Value: -2, Unit: swing.UnitDegrees},
		{Phase: swing.P7, Name: swing.MetricWeightDistImp, Value: 80, Unit: swing.UnitPercent},
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("CleanSwingProducesNoFaults", func(t *testing.T) {
		e := NewEngineForClub("7 iron")
		faults := e.Evaluate(ironAddressKPIs())
		assert.Empty(t, faults)
	})

	t.Run("ShortShoulderTurnTriggersOneFault", func(t *testing.T) {
		rule := Rule{
			Phase:       swing.P4,
			Metric:      swing.MetricShoulderTurn,
			Condition:   Condition{Kind: ConditionLessThan, Threshold: 80},
			FaultID:     "insufficient_shoulder_turn",
			FaultName:   "Insufficient Shoulder Turn",
			TemplateKey: "backswing.shoulder_turn",
			Severity:    RelativeSeverity(0.5),
		}
		e := NewEngine([]Rule{rule}, swing.ClubIron)

		kpis := []swing.KPI{{
			Phase: swing.P4,
			Name:  swing.MetricShoulderTurn,
			Value: 45,
			Unit:  swing.UnitDegrees,
		}}
		faults := e.Evaluate(kpis)
		require.Len(t, faults, 1)

		f := faults[0]
		assert.Equal(t, "insufficient_shoulder_turn", f.ID)
		assert.Equal(t, []swing.PhaseName{swing.P4}, f.Phases)
		require.Len(t, f.Deviations, 1)
		assert.Equal(t, "45.0 degrees", f.Deviations[0].ObservedText)
		assert.Equal(t, "at least 80.0 degrees", f.Deviations[0].Ideal)
		assert.Equal(t, 45.0, f.Deviations[0].Observed)
		require.NotNil(t, f.Severity)
		assert.InDelta(t, 0.875, *f.Severity, 1e-9)
	})

	t.Run("AbsentKPISkipsRule", func(t *testing.T) {
		e := NewEngineForClub("7 iron")
		kpis := ironAddressKPIs()
		// Drop the hinge angle and push the remaining posture metrics
		// out of range: only they should fire.
		kpis = kpis[1:]
		kpis[0].Value = 45 // lead knee, above the 30 ceiling
		faults := e.Evaluate(kpis)
		require.Len(t, faults, 1)
		assert.Equal(t, "improper_knee_flex_lead", faults[0].ID)
	})

	t.Run("MatrixOrderPreserved", func(t *testing.T) {
		e := NewEngineForClub("driver")
		kpis := []swing.KPI{
			{Phase: swing.P1, Name: swing.MetricHipHinge, Value: 5, Unit: swing.UnitDegrees},
			{Phase: swing.P4, Name: swing.MetricShoulderTurn, Value: 40, Unit: swing.UnitDegrees},
			{Phase: swing.P7, Name: swing.MetricWeightDistImp, Value: 30, Unit: swing.UnitPercent},
		}
		faults := e.Evaluate(kpis)
		require.Len(t, faults, 3)
		assert.Equal(t, "improper_hip_hinge", faults[0].ID)
		assert.Equal(t, "insufficient_shoulder_turn", faults[1].ID)
		assert.Equal(t, "hanging_back", faults[2].ID)
	})

	t.Run("Deterministic", func(t *testing.T) {
		e := NewEngineForClub("driver")
		kpis := []swing.KPI{
			{Phase: swing.P1, Name: swing.MetricHipHinge, Value: 55, Unit: swing.UnitDegrees},
			{Phase: swing.P4, Name: swing.MetricLateralSway, Value: 14, Unit: swing.UnitCm},
		}
		first := e.Evaluate(kpis)
		second := e.Evaluate(kpis)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("repeated evaluation differs (-first +second):\n%s", diff)
		}
	})

	t.Run("RuleWithoutSeverityFunc", func(t *testing.T) {
		rule := Rule{
			Phase:     swing.P1,
			Metric:    swing.MetricHipHinge,
			Condition: Condition{Kind: ConditionOutsideRange, Lo: 30, Hi: 45},
			FaultID:   "improper_hip_hinge",
		}
		e := NewEngine([]Rule{rule}, swing.ClubIron)
		faults := e.Evaluate([]swing.KPI{
			{Phase: swing.P1, Name: swing.MetricHipHinge, Value: 60, Unit: swing.UnitDegrees},
		})
		require.Len(t, faults, 1)
		assert.Nil(t, faults[0].Severity)
	})

	t.Run("CategoryModifierScalesSeverity", func(t *testing.T) {
		rule := Rule{
			Phase:     swing.P1,
			Metric:    swing.MetricHipHinge,
			Condition: Condition{Kind: ConditionOutsideRange, Lo: 30, Hi: 45},
			FaultID:   "improper_hip_hinge",
			Severity:  RelativeSeverity(0.5),
		}
		kpis := []swing.KPI{
			{Phase: swing.P1, Name: swing.MetricHipHinge, Value: 50, Unit: swing.UnitDegrees},
		}

		iron := NewEngine([]Rule{rule}, swing.ClubIron).Evaluate(kpis)
		putter := NewEngine([]Rule{rule}, swing.ClubPutter).Evaluate(kpis)
		require.Len(t, iron, 1)
		require.Len(t, putter, 1)
		require.NotNil(t, iron[0].Severity)
		require.NotNil(t, putter[0].Severity)
		assert.InDelta(t, *iron[0].Severity*0.75, *putter[0].Severity, 1e-9)
	})
}

func TestConditionViolated(t *testing.T) {
	outside := Condition{Kind: ConditionOutsideRange, Lo: 30, Hi: 45}
	cases := []struct {
		value float64
		want  bool
	}{
		{29.999, true},
		{30, false},
		{37.5, false},
		{45, false},
		{45.001, true},
	}
	for _, tc := range cases {
		if got := outside.Violated(tc.value); got != tc.want {
			t.Errorf("outside [30,45].Violated(%v) = %t, want %t", tc.value, got, tc.want)
		}
	}

	less := Condition{Kind: ConditionLessThan, Threshold: 80}
	assert.True(t, less.Violated(79.9))
	assert.False(t, less.Violated(80))
	assert.False(t, less.Violated(90))

	greater := Condition{Kind: ConditionGreaterThan, Threshold: 8}
	assert.True(t, greater.Violated(8.1))
	assert.False(t, greater.Violated(8))
	assert.False(t, greater.Violated(-3))
}

func TestConditionIdealText(t *testing.T) {
	assert.Equal(t, "between 48.0 and 58.0 percent",
		Condition{Kind: ConditionOutsideRange, Lo: 48, Hi: 58}.IdealText(swing.UnitPercent))
	assert.Equal(t, "at least 80.0 degrees",
		Condition{Kind: ConditionLessThan, Threshold: 80}.IdealText(swing.UnitDegrees))
	assert.Equal(t, "at most 8.0 cm",
		Condition{Kind: ConditionGreaterThan, Threshold: 8}.IdealText(swing.UnitCm))
}

func TestPutterMatrixSkipsRotationRules(t *testing.T) {
	rules := RulesFor(swing.ClubPutter)
	for _, r := range rules {
		assert.NotEqual(t, swing.P4, r.Phase, "putter matrix should carry no top-of-backswing rules")
	}
	assert.Len(t, rules, 4)
}

func TestRankBySeverity(t *testing.T) {
	low, high := 0.2, 0.9
	faults := []Fault{
		{ID: "a", Severity: &low},
		{ID: "b"},
		{ID: "c", Severity: &high},
	}
	ranked := RankBySeverity(faults)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c", ranked[0].ID)
	assert.Equal(t, "a", ranked[1].ID)
	assert.Equal(t, "b", ranked[2].ID)

	// Input order untouched.
	assert.Equal(t, "a", faults[0].ID)
	assert.Equal(t, "b", faults[1].ID)
	assert.Equal(t, "c", faults[2].ID)
}

func TestFaultSummary(t *testing.T) {
	f := Fault{
		Name: "Insufficient Shoulder Turn",
		Deviations: []KPIDeviation{{
			Phase:        swing.P4,
			ObservedText: "45.0 degrees",
			Ideal:        "at least 80.0 degrees",
		}},
	}
	assert.Equal(t,
		"Insufficient Shoulder Turn (Top of Backswing: observed 45.0 degrees, ideal at least 80.0 degrees)",
		f.Summary())

	assert.Equal(t, "Bare Fault", Fault{Name: "Bare Fault"}.Summary())
}
