package faults

import (
	"github.com/fairway-data/swinglab/internal/swing"
)

// RulesFor generates the rule matrix for a club category by substituting
// the category's parameters into the rule templates. The matrix is built
// fresh on each call and never mutated by evaluation.
func RulesFor(cat swing.ClubCategory) []Rule {
	p := swing.ParamsFor(cat)

	rules := []Rule{
		{
			Phase:  swing.P1,
			Metric: swing.MetricHipHinge,
			Condition: Condition{
				Kind: ConditionOutsideRange, Lo: p.HingeLo, Hi: p.HingeHi,
			},
			FaultID:     "improper_hip_hinge",
			FaultName:   "Improper Hip Hinge",
			Description: "The forward tilt from the hips at address is outside the window that lets the arms hang and the club swing on plane.",
			TemplateKey: "posture.hip_hinge",
			Severity:    RelativeSeverity(0.5),
		},
		{
			Phase:  swing.P1,
			Metric: swing.MetricKneeFlexLead,
			Condition: Condition{
				Kind: ConditionOutsideRange, Lo: p.KneeFlexLo, Hi: p.KneeFlexHi,
			},
			FaultID:     "improper_knee_flex_lead",
			FaultName:   "Improper Lead Knee Flex",
			Description: "Lead-knee flexion at address is outside the athletic range.",
			TemplateKey: "posture.knee_flex",
			Severity:    RelativeSeverity(0.75),
		},
		{
			Phase:  swing.P1,
			Metric: swing.MetricKneeFlexTrail,
			Condition: Condition{
				Kind: ConditionOutsideRange, Lo: p.KneeFlexLo, Hi: p.KneeFlexHi,
			},
			FaultID:     "improper_knee_flex_trail",
			FaultName:   "Improper Trail Knee Flex",
			Description: "Trail-knee flexion at address is outside the athletic range.",
			TemplateKey: "posture.knee_flex",
			Severity:    RelativeSeverity(0.75),
		},
		{
			Phase:  swing.P1,
			Metric: swing.MetricWeightDist,
			Condition: Condition{
				Kind: ConditionOutsideRange, Lo: p.WeightLo, Hi: p.WeightHi,
			},
			FaultID:     "poor_weight_distribution",
			FaultName:   "Poor Weight Distribution",
			Description: "Setup weight balance does not match this club's ideal lead-foot share.",
			TemplateKey: "setup.weight",
			Severity:    RelativeSeverity(0.4),
		},
	}

	if p.HasFullTurn {
		rules = append(rules,
			Rule{
				Phase:  swing.P4,
				Metric: swing.MetricShoulderTurn,
				Condition: Condition{
					Kind: ConditionLessThan, Threshold: p.MinShoulderTurn,
				},
				FaultID:     "insufficient_shoulder_turn",
				FaultName:   "Insufficient Shoulder Turn",
				Description: "The shoulders stop turning short of a full backswing, costing stored power.",
				TemplateKey: "backswing.shoulder_turn",
				Severity:    RelativeSeverity(0.5),
			},
			Rule{
				Phase:  swing.P4,
				Metric: swing.MetricXFactor,
				Condition: Condition{
					Kind: ConditionLessThan, Threshold: p.MinXFactor,
				},
				FaultID:     "insufficient_x_factor",
				FaultName:   "Insufficient X-Factor",
				Description: "Too little shoulder-hip separation at the top limits the stretch that powers the downswing.",
				TemplateKey: "backswing.x_factor",
				Severity:    RelativeSeverity(0.6),
			},
			Rule{
				Phase:  swing.P4,
				Metric: swing.MetricLateralSway,
				Condition: Condition{
					Kind: ConditionGreaterThan, Threshold: p.MaxSwayCm,
				},
				FaultID:     "lateral_sway",
				FaultName:   "Lateral Sway",
				Description: "The hips slide away from the target in the backswing instead of turning in place.",
				TemplateKey: "backswing.sway",
				Severity:    AbsoluteSeverity(15),
			},
			Rule{
				Phase:  swing.P4,
				Metric: swing.MetricReverseSpine,
				Condition: Condition{
					Kind: ConditionGreaterThan, Threshold: p.MaxReverseSpineDeg,
				},
				FaultID:     "reverse_spine_angle",
				FaultName:   "Reverse Spine Angle",
				Description: "The upper body tilts toward the target at the top, an injury-correlated position that forces an over-the-top downswing.",
				TemplateKey: "backswing.reverse_spine",
				Severity:    AbsoluteSeverity(12),
			},
			Rule{
				Phase:  swing.P7,
				Metric: swing.MetricWeightDistImp,
				Condition: Condition{
					Kind: ConditionLessThan, Threshold: p.ImpactWeightLo,
				},
				FaultID:     "hanging_back",
				FaultName:   "Hanging Back",
				Description: "Weight stays on the trail side through impact instead of shifting into the lead foot.",
				TemplateKey: "impact.weight_shift",
				Severity:    RelativeSeverity(0.5),
			},
		)
	}

	return rules
}
