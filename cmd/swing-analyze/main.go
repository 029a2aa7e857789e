// Command swing-analyze is a thin caller around the analysis core: it
// loads a swing capture from JSON, runs the full pipeline, and writes
// the report as JSON or text, optionally with velocity-series charts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/fairway-data/swinglab/internal/analysis"
	"github.com/fairway-data/swinglab/internal/chart"
	"github.com/fairway-data/swinglab/internal/config"
	"github.com/fairway-data/swinglab/internal/kinematics"
	"github.com/fairway-data/swinglab/internal/monitoring"
	"github.com/fairway-data/swinglab/internal/swing"
	"github.com/fairway-data/swinglab/internal/version"
)

var (
	input       = flag.String("input", "", "Path to the swing capture JSON file (required)")
	format      = flag.String("format", "json", "Output format: json or text")
	tuningPath  = flag.String("tuning", "", "Optional tuning override JSON file")
	chartHTML   = flag.String("chart-html", "", "Write an interactive velocity chart to this HTML file")
	chartPNG    = flag.String("chart-png", "", "Write a static velocity plot to this PNG file")
	ranked      = flag.Bool("ranked", false, "Order faults most-severe first")
	verbose     = flag.Bool("verbose", false, "Enable debug logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("swing-analyze %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	monitoring.SetDebug(*verbose)

	if err := run(); err != nil {
		monitoring.Logf("swing-analyze: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := analysis.DefaultConfig()
	if *tuningPath != "" {
		tuning, err := config.LoadTuningConfig(*tuningPath)
		if err != nil {
			return err
		}
		tuning.ApplyKPI(&cfg.KPI)
		tuning.ApplyKinematics(&cfg.Kinematic)
		monitoring.Debugf("applied tuning overrides from %s", *tuningPath)
	}

	s, err := swing.LoadCapture(*input)
	if err != nil {
		return err
	}
	if s.SessionID == "" {
		s.SessionID = uuid.New().String()
		monitoring.Debugf("capture has no session id, assigned %s", s.SessionID)
	}

	analyzer := analysis.NewAnalyzer(cfg, kinematics.NewMemoryCache())
	report, err := analyzer.Analyze(s)
	if err != nil {
		return err
	}
	if *ranked {
		report.Faults = report.RankedFaults()
	}

	if *chartHTML != "" {
		f, err := os.Create(*chartHTML)
		if err != nil {
			return fmt.Errorf("create chart file: %w", err)
		}
		defer f.Close()
		title := fmt.Sprintf("Kinematic sequence - session %s (%s)", report.SessionID, report.Club)
		if err := chart.RenderSequenceHTML(f, report.Sequence, title); err != nil {
			return err
		}
		monitoring.Debugf("wrote %s", *chartHTML)
	}
	if *chartPNG != "" {
		title := fmt.Sprintf("Kinematic sequence - session %s", report.SessionID)
		if err := chart.SaveSequencePNG(report.Sequence, title, *chartPNG); err != nil {
			return err
		}
		monitoring.Debugf("wrote %s", *chartPNG)
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text":
		printText(report)
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func printText(report *analysis.SwingReport) {
	fmt.Printf("Session %s - %s (%s)\n", report.SessionID, report.Club, report.Category)
	fmt.Printf("\nKPIs (%d):\n", len(report.KPIs))
	for _, k := range report.KPIs {
		ideal := ""
		if k.Ideal != nil {
			ideal = fmt.Sprintf("  [ideal %.1f-%.1f]", k.Ideal.Lo, k.Ideal.Hi)
		}
		fmt.Printf("  %-4s %-28s %s%s\n", k.Phase, k.Name, k.Display(), ideal)
	}

	fmt.Printf("\nFaults (%d):\n", len(report.Faults))
	for _, f := range report.Faults {
		sev := ""
		if f.Severity != nil {
			sev = fmt.Sprintf(" severity=%.2f", *f.Severity)
		}
		fmt.Printf("  %s%s\n", f.Summary(), sev)
	}

	seq := report.Sequence
	fmt.Printf("\nKinematic sequence: order_correct=%t efficiency=%.0f (%s)\n",
		seq.OrderCorrect, seq.EfficiencyScore, seq.Rating)
	for _, seg := range kinematics.SegmentOrder {
		if p := seq.Peaks[seg]; p != nil {
			fmt.Printf("  %-7s peak %8.1f deg/s at %6.1f ms\n", seg, p.VelocityDegPerSec, p.TimestampMs)
		} else {
			fmt.Printf("  %-7s no peak above noise floor\n", seg)
		}
	}
	for _, key := range []string{kinematics.GapPelvisTorso, kinematics.GapTorsoArms, kinematics.GapArmsClub} {
		if gap, ok := seq.GapsMs[key]; ok {
			fmt.Printf("  gap %-16s %6.1f ms\n", key, gap)
		}
	}
}
