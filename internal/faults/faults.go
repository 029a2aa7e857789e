// Package faults evaluates a declarative, club-aware rule matrix against
// extracted KPIs and emits swing faults. Rules are pure configuration:
// evaluation never special-cases a rule identity, carries no state, and
// produces an identical fault list for identical input, in matrix order.
package faults

import (
	"fmt"

	"github.com/fairway-data/swinglab/internal/swing"
)

// KPIDeviation records how one KPI violated its rule.
type KPIDeviation struct {
	Metric       string          `json:"metric"`
	Observed     float64         `json:"observed"`
	ObservedText string          `json:"observed_text"`
	Ideal        string          `json:"ideal"`
	Phase        swing.PhaseName `json:"phase"`
}

// Fault is a named deviation of one or more KPIs from their ideal
// ranges. Faults are derived values and never mutated after creation.
// TemplateKey is opaque to this package: the downstream feedback
// generator uses it to select phrasing.
type Fault struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Phases      []swing.PhaseName `json:"phases"`
	Description string            `json:"description"`
	Deviations  []KPIDeviation    `json:"deviations"`
	Severity    *float64          `json:"severity,omitempty"`
	TemplateKey string            `json:"template_key"`
}

// ConditionKind is the closed set of rule condition types.
type ConditionKind int

const (
	// ConditionOutsideRange triggers iff value < Lo or value > Hi.
	ConditionOutsideRange ConditionKind = iota
	// ConditionLessThan triggers iff value < Threshold.
	ConditionLessThan
	// ConditionGreaterThan triggers iff value > Threshold.
	ConditionGreaterThan
)

// Condition is a rule's numeric trigger.
type Condition struct {
	Kind      ConditionKind
	Lo, Hi    float64
	Threshold float64
}

// Violated reports whether the observed value triggers the condition.
func (c Condition) Violated(value float64) bool {
	switch c.Kind {
	case ConditionOutsideRange:
		return value < c.Lo || value > c.Hi
	case ConditionLessThan:
		return value < c.Threshold
	case ConditionGreaterThan:
		return value > c.Threshold
	default:
		return false
	}
}

// IdealText renders the condition's ideal as prose for deviation
// records, e.g. "between 48.0 and 58.0 percent".
func (c Condition) IdealText(unit string) string {
	switch c.Kind {
	case ConditionOutsideRange:
		return fmt.Sprintf("between %.1f and %.1f %s", c.Lo, c.Hi, unit)
	case ConditionLessThan:
		return fmt.Sprintf("at least %.1f %s", c.Threshold, unit)
	case ConditionGreaterThan:
		return fmt.Sprintf("at most %.1f %s", c.Threshold, unit)
	default:
		return ""
	}
}

// Rule binds a KPI (by exact metric name and phase) to a condition and
// the fault it produces on violation. Rules are immutable configuration,
// not runtime state.
type Rule struct {
	Phase       swing.PhaseName
	Metric      string
	Condition   Condition
	FaultID     string
	FaultName   string
	Description string
	TemplateKey string
	// Severity is optional; rules without it emit faults with no
	// severity rather than defaulting to an arbitrary number.
	Severity SeverityFunc
}
