package swing

import "fmt"

// Range is an inclusive ideal interval for a KPI value.
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Contains reports whether v lies inside the range (inclusive).
func (r Range) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// KPI is one derived biomechanical measurement anchored to a phase.
// KPIs are recomputed on demand and never mutated. Value carries the
// numeric measurement; Category optionally carries a qualitative bucket
// (e.g. a tempo classification) alongside it.
type KPI struct {
	Phase    PhaseName `json:"phase"`
	Name     string    `json:"name"`
	Value    float64   `json:"value"`
	Category string    `json:"category,omitempty"`
	Unit     string    `json:"unit"`
	Ideal    *Range    `json:"ideal,omitempty"`
	Note     string    `json:"note,omitempty"`
}

// Display renders the observed value with its unit, e.g. "45.0 degrees".
func (k KPI) Display() string {
	return fmt.Sprintf("%.1f %s", k.Value, k.Unit)
}

// FindKPI returns the first KPI matching the metric name and phase, or
// nil when no such KPI was extracted. Absence is a soft gap: rules that
// reference a missing KPI skip rather than fail.
func FindKPI(kpis []KPI, name string, phase PhaseName) *KPI {
	for i := range kpis {
		if kpis[i].Name == name && kpis[i].Phase == phase {
			return &kpis[i]
		}
	}
	return nil
}
