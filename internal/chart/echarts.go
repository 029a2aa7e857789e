// Package chart renders a swing's smoothed segment-velocity series for
// visualization: an interactive HTML chart via go-echarts and a static
// PNG via gonum/plot. Rendering is a thin consumer of the analysis
// output and never feeds back into it.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fairway-data/swinglab/internal/kinematics"
)

// segmentColors keeps series colors stable across renders.
var segmentColors = map[kinematics.Segment]string{
	kinematics.SegmentPelvis: "#31688e",
	kinematics.SegmentTorso:  "#35b779",
	kinematics.SegmentArms:   "#fde725",
	kinematics.SegmentClub:   "#e34a33",
}

// RenderSequenceHTML writes an interactive line chart of the smoothed
// velocity series to w, one series per segment with peak markers
// overlaid.
func RenderSequenceHTML(w io.Writer, res *kinematics.SequenceResult, title string) error {
	if res == nil {
		return fmt.Errorf("render sequence chart: nil result")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Kinematic Sequence", Width: "1100px", Height: "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("efficiency=%.0f rating=%s order_correct=%t", res.EfficiencyScore, res.Rating, res.OrderCorrect),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "time (ms)", NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: "angular velocity (deg/s)", NameLocation: "middle", NameGap: 45}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	for _, seg := range kinematics.SegmentOrder {
		series := res.Series[seg]
		data := make([]opts.LineData, 0, len(series))
		for _, s := range series {
			data = append(data, opts.LineData{Value: []interface{}{s.TimestampMs, s.VelocityDegPerSec}})
		}
		line.AddSeries(string(seg), data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: segmentColors[seg]}),
		)
	}

	peaks := charts.NewScatter()
	peakData := make([]opts.ScatterData, 0, len(kinematics.SegmentOrder))
	for _, seg := range kinematics.SegmentOrder {
		if p := res.Peaks[seg]; p != nil {
			peakData = append(peakData, opts.ScatterData{
				Name:  string(seg) + " peak",
				Value: []interface{}{p.TimestampMs, p.VelocityDegPerSec},
			})
		}
	}
	peaks.AddSeries("peaks", peakData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}))
	line.Overlap(peaks)

	return line.Render(w)
}
