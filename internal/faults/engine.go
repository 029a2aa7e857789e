package faults

import (
	"fmt"
	"sort"

	"github.com/fairway-data/swinglab/internal/swing"
)

// Engine evaluates a rule matrix against an extracted KPI list. The
// engine holds only its rules and the category context used for the
// severity modifier; it performs no I/O and keeps no evaluation state.
type Engine struct {
	rules    []Rule
	category swing.ClubCategory
}

// NewEngine creates an engine over an explicit rule matrix. Most callers
// build the matrix with RulesFor; injecting it keeps "rules are data"
// extensibility without hidden globals.
func NewEngine(rules []Rule, category swing.ClubCategory) *Engine {
	return &Engine{rules: rules, category: category}
}

// NewEngineForClub classifies the club name and builds the matching
// matrix in one step.
func NewEngineForClub(clubName string) *Engine {
	cat := swing.ClassifyClub(clubName)
	return NewEngine(RulesFor(cat), cat)
}

// Evaluate runs every rule against the KPI list and returns the
// triggered faults in matrix order. Rules whose KPI is absent are
// skipped; identical input always produces the identical fault list.
func (e *Engine) Evaluate(kpis []swing.KPI) []Fault {
	faults := make([]Fault, 0)
	modifier := swing.ParamsFor(e.category).SeverityModifier
	for _, rule := range e.rules {
		k := swing.FindKPI(kpis, rule.Metric, rule.Phase)
		if k == nil {
			continue
		}
		if !rule.Condition.Violated(k.Value) {
			continue
		}
		f := Fault{
			ID:          rule.FaultID,
			Name:        rule.FaultName,
			Phases:      []swing.PhaseName{rule.Phase},
			Description: rule.Description,
			TemplateKey: rule.TemplateKey,
			Deviations: []KPIDeviation{{
				Metric:       rule.Metric,
				Observed:     k.Value,
				ObservedText: k.Display(),
				Ideal:        rule.Condition.IdealText(k.Unit),
				Phase:        rule.Phase,
			}},
		}
		if rule.Severity != nil {
			sev := clamp01(rule.Severity(k.Value, rule.Condition) * modifier)
			f.Severity = &sev
		}
		faults = append(faults, f)
	}
	return faults
}

// RankBySeverity returns the faults ordered most-severe first. Faults
// without severity sort last; the sort is stable so equal entries keep
// matrix order. The input slice is not modified.
func RankBySeverity(faults []Fault) []Fault {
	ranked := make([]Fault, len(faults))
	copy(ranked, faults)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := ranked[i].Severity, ranked[j].Severity
		switch {
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return *si > *sj
		}
	})
	return ranked
}

// Summary renders a one-line description of a fault for logs and text
// output.
func (f Fault) Summary() string {
	if len(f.Deviations) == 0 {
		return f.Name
	}
	d := f.Deviations[0]
	return fmt.Sprintf("%s (%s: observed %s, ideal %s)", f.Name, d.Phase.Label(), d.ObservedText, d.Ideal)
}
