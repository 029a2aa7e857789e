package swing

// Canonical joint names as emitted by the pose estimator. Side-specific
// joints use "left_"/"right_" prefixes; SideJoint builds them from a
// side prefix so lead/trail resolution stays in one place.
const (
	JointNose          = "nose"
	JointLeftShoulder  = "left_shoulder"
	JointRightShoulder = "right_shoulder"
	JointLeftElbow     = "left_elbow"
	JointRightElbow    = "right_elbow"
	JointLeftWrist     = "left_wrist"
	JointRightWrist    = "right_wrist"
	JointLeftHip       = "left_hip"
	JointRightHip      = "right_hip"
	JointLeftKnee      = "left_knee"
	JointRightKnee     = "right_knee"
	JointLeftAnkle     = "left_ankle"
	JointRightAnkle    = "right_ankle"
)

// SideJoint composes a side prefix ("left"/"right") with a joint base
// name ("hip", "knee", ...).
func SideJoint(side, base string) string {
	return side + "_" + base
}

// Canonical metric names shared by the KPI extraction engine and the
// fault rule matrix. Rules reference KPIs by exact name, so the names
// live here rather than in either engine.
const (
	MetricHipHinge       = "hip_hinge_angle"
	MetricKneeFlexLead   = "knee_flexion_lead"
	MetricKneeFlexTrail  = "knee_flexion_trail"
	MetricWeightDist     = "weight_distribution"
	MetricWeightDistImp  = "weight_distribution_impact"
	MetricShoulderTurn   = "shoulder_rotation"
	MetricHipTurn        = "hip_rotation"
	MetricXFactor        = "x_factor"
	MetricLateralSway    = "lateral_sway"
	MetricSpineAngle     = "spine_angle"
	MetricReverseSpine   = "reverse_spine_angle"
	MetricHeadDrop       = "head_drop"
	MetricTempoRatio     = "tempo_ratio"
)

// Units used on KPI records and in rendered deviation text.
const (
	UnitDegrees = "degrees"
	UnitPercent = "percent"
	UnitCm      = "cm"
	UnitRatio   = "ratio"
)
