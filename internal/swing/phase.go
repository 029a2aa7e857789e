package swing

// PhaseName is one of the ten canonical P-System checkpoints.
type PhaseName string

const (
	P1  PhaseName = "P1"  // Address
	P2  PhaseName = "P2"  // Takeaway (shaft horizontal, backswing)
	P3  PhaseName = "P3"  // Lead arm horizontal, backswing
	P4  PhaseName = "P4"  // Top of backswing
	P5  PhaseName = "P5"  // Lead arm horizontal, downswing
	P6  PhaseName = "P6"  // Shaft horizontal, downswing
	P7  PhaseName = "P7"  // Impact
	P8  PhaseName = "P8"  // Shaft horizontal, follow-through
	P9  PhaseName = "P9"  // Trail arm horizontal, follow-through
	P10 PhaseName = "P10" // Finish
)

// phaseLabels maps checkpoint names to their conventional descriptions.
var phaseLabels = map[PhaseName]string{
	P1:  "Address",
	P2:  "Takeaway",
	P3:  "Halfway Back",
	P4:  "Top of Backswing",
	P5:  "Early Downswing",
	P6:  "Pre-Impact",
	P7:  "Impact",
	P8:  "Release",
	P9:  "Follow Through",
	P10: "Finish",
}

// Label returns the conventional description for a checkpoint, or the raw
// name when the checkpoint is not one of the ten canonical phases.
func (p PhaseName) Label() string {
	if l, ok := phaseLabels[p]; ok {
		return l
	}
	return string(p)
}

// Phase is a named checkpoint with its inclusive frame window. Phases are
// produced once per swing by the (out-of-scope) phase detector and are
// assumed ordered; they need not cover every frame.
type Phase struct {
	Name       PhaseName `json:"name"`
	StartFrame int       `json:"start_frame"`
	EndFrame   int       `json:"end_frame"`
}

// PhaseByName returns the phase with the given name, or nil when the
// swing's phase list does not include it. A missing phase is a soft gap:
// metrics anchored to it are simply omitted.
func (s *SwingInput) PhaseByName(name PhaseName) *Phase {
	for i := range s.Phases {
		if s.Phases[i].Name == name {
			return &s.Phases[i]
		}
	}
	return nil
}
