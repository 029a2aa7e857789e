package swing

// CategoryParams holds the club-category-specific ideal ranges and
// thresholds used both for KPI ideal annotations and for generating the
// fault rule matrix. Values are pure configuration: evaluation code
// never special-cases a category.
type CategoryParams struct {
	// Weight distribution at address, percent toward the lead foot.
	WeightLo, WeightHi float64
	// Weight distribution at impact, percent toward the lead foot.
	ImpactWeightLo, ImpactWeightHi float64
	// Hip hinge angle at address, degrees from vertical.
	HingeLo, HingeHi float64
	// Knee flexion at address, degrees.
	KneeFlexLo, KneeFlexHi float64
	// Minimum shoulder rotation at the top, degrees.
	MinShoulderTurn float64
	// Minimum X-factor (shoulder minus hip rotation) at the top, degrees.
	MinXFactor float64
	// Maximum lateral sway between address and the top, centimeters.
	MaxSwayCm float64
	// Maximum torso tilt toward the target at the top, degrees.
	MaxReverseSpineDeg float64
	// HasFullTurn is false for categories whose motion has no full
	// backswing (putter); rotation and sway rules are skipped for them.
	HasFullTurn bool
	// SeverityModifier scales computed fault severities for the
	// category. 1.0 leaves them unchanged.
	SeverityModifier float64
}

// categoryParams is indexed by ClubCategory. Driver setups favor the
// trail side at address and demand the biggest turn; wedges sit forward
// with a shorter turn. Unknown clubs borrow the iron profile.
var categoryParams = map[ClubCategory]CategoryParams{
	ClubDriver: {
		WeightLo: 38, WeightHi: 48,
		ImpactWeightLo: 60, ImpactWeightHi: 95,
		HingeLo: 28, HingeHi: 42,
		KneeFlexLo: 15, KneeFlexHi: 30,
		MinShoulderTurn: 85, MinXFactor: 35,
		MaxSwayCm: 10, MaxReverseSpineDeg: 5,
		HasFullTurn: true, SeverityModifier: 1.0,
	},
	ClubWood: {
		WeightLo: 43, WeightHi: 53,
		ImpactWeightLo: 62, ImpactWeightHi: 95,
		HingeLo: 30, HingeHi: 44,
		KneeFlexLo: 15, KneeFlexHi: 30,
		MinShoulderTurn: 82, MinXFactor: 32,
		MaxSwayCm: 10, MaxReverseSpineDeg: 5,
		HasFullTurn: true, SeverityModifier: 1.0,
	},
	ClubIron: {
		WeightLo: 48, WeightHi: 58,
		ImpactWeightLo: 65, ImpactWeightHi: 95,
		HingeLo: 30, HingeHi: 45,
		KneeFlexLo: 15, KneeFlexHi: 30,
		MinShoulderTurn: 80, MinXFactor: 30,
		MaxSwayCm: 8, MaxReverseSpineDeg: 5,
		HasFullTurn: true, SeverityModifier: 1.0,
	},
	ClubWedge: {
		WeightLo: 53, WeightHi: 63,
		ImpactWeightLo: 68, ImpactWeightHi: 95,
		HingeLo: 32, HingeHi: 48,
		KneeFlexLo: 15, KneeFlexHi: 32,
		MinShoulderTurn: 70, MinXFactor: 25,
		MaxSwayCm: 6, MaxReverseSpineDeg: 5,
		HasFullTurn: true, SeverityModifier: 0.9,
	},
	ClubPutter: {
		WeightLo: 45, WeightHi: 55,
		ImpactWeightLo: 45, ImpactWeightHi: 55,
		HingeLo: 25, HingeHi: 45,
		KneeFlexLo: 5, KneeFlexHi: 25,
		HasFullTurn: false, SeverityModifier: 0.75,
	},
}

// ParamsFor returns the parameters for a club category. Unknown (or
// unrecognized) categories fall back to the iron profile, the most
// neutral of the set.
func ParamsFor(cat ClubCategory) CategoryParams {
	if p, ok := categoryParams[cat]; ok {
		return p
	}
	return categoryParams[ClubIron]
}
