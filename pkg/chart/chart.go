// Package chart draws the lighting-column bar chart.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/RoyCoates/EGM722Project/pkg/analytics"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// Page size of the saved chart.
const (
	Width  = 14 * vg.Inch
	Height = 7 * vg.Inch
)

// barWidth is in points.
const barWidth vg.Length = 22

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no junctions to plot")

// Build lays out a grouped bar chart with one (total, scheduled) pair per
// junction, in the order given, with each bar's value printed above it.
func Build(summaries []analytics.JunctionSummary, def spec.ChartDef) (*plot.Plot, error) {
	if len(summaries) == 0 {
		return nil, ErrNoData
	}
	totalColor, err := ParseHexColor(def.TotalColor)
	if err != nil {
		return nil, fmt.Errorf("total colour: %w", err)
	}
	scheduledColor, err := ParseHexColor(def.ScheduledColor)
	if err != nil {
		return nil, fmt.Errorf("scheduled colour: %w", err)
	}

	p := plot.New()
	p.Title.Text = def.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = def.XLabel
	p.Y.Label.Text = def.YLabel

	totals := make(plotter.Values, len(summaries))
	scheduled := make(plotter.Values, len(summaries))
	names := make([]string, len(summaries))
	for i, s := range summaries {
		totals[i] = float64(s.Total)
		scheduled[i] = float64(s.Scheduled)
		names[i] = s.DisplayName()
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	grid.Horizontal.Color = color.Gray{Y: 180}
	p.Add(grid)

	totalBars, err := bars(totals, totalColor, -barWidth/2)
	if err != nil {
		return nil, err
	}
	scheduledBars, err := bars(scheduled, scheduledColor, barWidth/2)
	if err != nil {
		return nil, err
	}
	p.Add(totalBars, scheduledBars)
	p.Legend.Add(def.TotalLegend, totalBars)
	p.Legend.Add(def.ScheduledLegend, scheduledBars)
	p.Legend.Top = true

	for _, set := range []struct {
		values plotter.Values
		dx     vg.Length
	}{
		{totals, -barWidth / 2},
		{scheduled, barWidth / 2},
	} {
		l, err := valueLabels(set.values, set.dx)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	p.Y.Min = 0
	p.Y.Max = math.Max(1, floats.Max(totals)*1.15)

	return p, nil
}

// Render builds the chart and saves it to path; the format follows the
// file extension.
func Render(path string, summaries []analytics.JunctionSummary, def spec.ChartDef) error {
	p, err := Build(summaries, def)
	if err != nil {
		return err
	}
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}
	return nil
}

func bars(values plotter.Values, c color.Color, offset vg.Length) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("building bars: %w", err)
	}
	b.Color = c
	b.LineStyle.Width = vg.Points(0.75)
	b.LineStyle.Color = color.Black
	b.Offset = offset
	return b, nil
}

func valueLabels(values plotter.Values, dx vg.Length) (*plotter.Labels, error) {
	xys := make([]plotter.XY, len(values))
	text := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		text[i] = strconv.Itoa(int(v))
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, fmt.Errorf("building labels: %w", err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = draw.XCenter
	}
	l.Offset = vg.Point{X: dx, Y: vg.Points(3)}
	return l, nil
}

// ParseHexColor parses #rgb or #rrggbb.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
