package report

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/katalvlaran/colloc/bvp"
)

// Series colors; the legend names them.
var (
	colorCollocation = asciigraph.Red
	colorExact       = asciigraph.Blue
)

// Minimum plot area; smaller requests are clamped.
const (
	minChartWidth  = 16
	minChartHeight = 4
)

// Chart plots the collocation polynomial against the exact solution over the
// problem domain, one sample per column, so the curve between nodes shows as
// well. The legend below the plot names the series and the boundary
// conditions (o) both curves pass through.
func Chart(sol *bvp.Solution, width, height int) (string, error) {
	if width < minChartWidth {
		width = minChartWidth
	}
	if height < minChartHeight {
		height = minChartHeight
	}
	p := sol.Problem

	computed := make([]float64, width)
	var exact []float64
	if p.HasExact() {
		exact = make([]float64, width)
	}
	for c := 0; c < width; c++ {
		t := p.A + (p.B-p.A)*float64(c)/float64(width-1)
		y, err := sol.Eval(t)
		if err != nil {
			return "", fmt.Errorf("report: chart: %w", err)
		}
		computed[c] = y
		if exact != nil {
			exact[c] = p.Exact(t)
		}
	}

	// The collocation curve goes last so it is drawn on top.
	series := [][]float64{computed}
	colors := []asciigraph.AnsiColor{colorCollocation}
	legend := "red: collocation"
	if exact != nil {
		series = [][]float64{exact, computed}
		colors = []asciigraph.AnsiColor{colorExact, colorCollocation}
		legend += "  blue: exact"
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("y(t), t in [%g, %g]", p.A, p.B)),
	))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%s  o boundary: y(%g) = %.4g, y(%g) = %.4g\n",
		legend, p.A, p.Ya, p.B, p.Yb)

	return sb.String(), nil
}
