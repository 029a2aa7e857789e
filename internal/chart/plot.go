package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fairway-data/swinglab/internal/kinematics"
)

var plotColors = map[kinematics.Segment]color.RGBA{
	kinematics.SegmentPelvis: {R: 49, G: 104, B: 142, A: 255},
	kinematics.SegmentTorso:  {R: 53, G: 183, B: 121, A: 255},
	kinematics.SegmentArms:   {R: 218, G: 165, B: 32, A: 255},
	kinematics.SegmentClub:   {R: 227, G: 74, B: 51, A: 255},
}

// SaveSequencePNG writes a static plot of the smoothed velocity series
// to path (PNG, dimensions chosen for a full downswing at a glance).
func SaveSequencePNG(res *kinematics.SequenceResult, title, path string) error {
	if res == nil {
		return fmt.Errorf("save sequence plot: nil result")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = "angular velocity (deg/s)"
	p.Add(plotter.NewGrid())

	for _, seg := range kinematics.SegmentOrder {
		series := res.Series[seg]
		if len(series) == 0 {
			continue
		}
		pts := make(plotter.XYs, 0, len(series))
		for _, s := range series {
			pts = append(pts, plotter.XY{X: s.TimestampMs, Y: s.VelocityDegPerSec})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("build %s line: %w", seg, err)
		}
		line.Width = vg.Points(1.5)
		line.Color = plotColors[seg]
		p.Add(line)
		p.Legend.Add(string(seg), line)
	}

	// Mark peaks so the sequence order is readable off the plot.
	peakPts := make(plotter.XYs, 0, len(kinematics.SegmentOrder))
	for _, seg := range kinematics.SegmentOrder {
		if pk := res.Peaks[seg]; pk != nil {
			peakPts = append(peakPts, plotter.XY{X: pk.TimestampMs, Y: pk.VelocityDegPerSec})
		}
	}
	if len(peakPts) > 0 {
		scatter, err := plotter.NewScatter(peakPts)
		if err != nil {
			return fmt.Errorf("build peak markers: %w", err)
		}
		scatter.GlyphStyle.Radius = vg.Points(4)
		p.Add(scatter)
	}

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save sequence plot: %w", err)
	}
	return nil
}
