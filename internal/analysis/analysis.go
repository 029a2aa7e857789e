// Package analysis ties the three core engines together: one call over
// an immutable swing input yields the KPI list, the triggered fault
// list, and the kinematic sequence result. Everything here is pure
// computation; loading inputs and persisting outputs happen strictly
// outside this package.
package analysis

import (
	"fmt"

	"github.com/fairway-data/swinglab/internal/faults"
	"github.com/fairway-data/swinglab/internal/kinematics"
	"github.com/fairway-data/swinglab/internal/kpi"
	"github.com/fairway-data/swinglab/internal/swing"
)

// SwingReport is the complete analysis output for one swing, handed to
// the external feedback generator.
type SwingReport struct {
	SessionID string                     `json:"session_id"`
	UserID    string                     `json:"user_id,omitempty"`
	Club      string                     `json:"club"`
	Category  swing.ClubCategory         `json:"category"`
	KPIs      []swing.KPI                `json:"kpis"`
	Faults    []faults.Fault             `json:"faults"`
	Sequence  *kinematics.SequenceResult `json:"sequence"`
}

// Config aggregates the tuning of every engine.
type Config struct {
	KPI       kpi.Params
	Kinematic kinematics.Config
}

// DefaultConfig returns the default tuning for all engines.
func DefaultConfig() Config {
	return Config{
		KPI:       kpi.DefaultParams(),
		Kinematic: kinematics.DefaultConfig(),
	}
}

// Analyzer runs the full pipeline. It is safe for concurrent use across
// independent swings: its only shared mutable state is the optional
// sequence cache, which guards itself.
type Analyzer struct {
	kpis  *kpi.Engine
	seq   *kinematics.Analyzer
	rules func(swing.ClubCategory) []faults.Rule
}

// NewAnalyzer builds an analyzer from config. cache may be nil to
// disable sequence-result caching.
func NewAnalyzer(cfg Config, cache kinematics.SequenceCache) *Analyzer {
	return &Analyzer{
		kpis:  kpi.NewEngine(cfg.KPI),
		seq:   kinematics.NewAnalyzer(cfg.Kinematic, cache),
		rules: faults.RulesFor,
	}
}

// WithRuleMatrix overrides the rule-matrix generator, for callers that
// supply their own configuration set.
func (a *Analyzer) WithRuleMatrix(gen func(swing.ClubCategory) []faults.Rule) *Analyzer {
	a.rules = gen
	return a
}

// Analyze validates the swing and runs KPI extraction, fault evaluation,
// and (cached) kinematic sequence analysis. Invalid input is the only
// error; every missing-data gap inside the pipeline degrades to omitted
// records.
func (a *Analyzer) Analyze(s *swing.SwingInput) (*SwingReport, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("analyze swing: %w", err)
	}

	kpis, err := a.kpis.Extract(s)
	if err != nil {
		return nil, err
	}

	category := swing.ClassifyClub(s.Club)
	engine := faults.NewEngine(a.rules(category), category)
	faultList := engine.Evaluate(kpis)

	seq, err := a.seq.AnalyzeCached(s)
	if err != nil {
		return nil, err
	}

	return &SwingReport{
		SessionID: s.SessionID,
		UserID:    s.UserID,
		Club:      s.Club,
		Category:  category,
		KPIs:      kpis,
		Faults:    faultList,
		Sequence:  seq,
	}, nil
}

// RankedFaults returns the report's faults ordered most-severe first,
// for feedback generators that present the worst problem first.
func (r *SwingReport) RankedFaults() []faults.Fault {
	return faults.RankBySeverity(r.Faults)
}
