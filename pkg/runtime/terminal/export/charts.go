package export

import (
	"fmt"

	"github.com/de-tools/report-splash/pkg/models/domain"
	g "maragu.dev/gomponents"
)

// Charts are rendered server-side as inline SVG so the dashboard stays a
// single self-contained file with no script or CDN dependencies.

const (
	chartWidth   = 720.0
	chartHeight  = 220.0
	chartPadLeft = 8.0
	chartPadTop  = 12.0
	plotHeight   = 160.0
	labelY       = chartPadTop + plotHeight + 16
)

func svgEl(height float64, children ...g.Node) g.Node {
	return g.El("svg",
		g.Attr("viewBox", fmt.Sprintf("0 0 %.0f %.0f", chartWidth, height)),
		g.Attr("class", "chart"),
		g.Attr("role", "img"),
		g.Group(children),
	)
}

// barChart draws one bar per (label, value) pair with the value printed above
// the bar and the label below it.
func barChart(labels []string, values []int) g.Node {
	maxVal := 0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	plotWidth := chartWidth - 2*chartPadLeft
	step := plotWidth / float64(len(values))
	barWidth := step * 0.72

	nodes := make([]g.Node, 0, 3*len(values))
	for i, v := range values {
		x := chartPadLeft + float64(i)*step + (step-barWidth)/2
		h := float64(v) / float64(maxVal) * plotHeight
		y := chartPadTop + plotHeight - h

		nodes = append(nodes,
			g.El("rect",
				g.Attr("x", fmt.Sprintf("%.1f", x)),
				g.Attr("y", fmt.Sprintf("%.1f", y)),
				g.Attr("width", fmt.Sprintf("%.1f", barWidth)),
				g.Attr("height", fmt.Sprintf("%.1f", h)),
				g.Attr("class", "bar"),
			),
		)
		if v > 0 {
			nodes = append(nodes,
				g.El("text",
					g.Attr("x", fmt.Sprintf("%.1f", x+barWidth/2)),
					g.Attr("y", fmt.Sprintf("%.1f", y-4)),
					g.Attr("class", "bar-value"),
					g.Attr("text-anchor", "middle"),
					g.Text(fmtCount(v)),
				),
			)
		}
		nodes = append(nodes,
			g.El("text",
				g.Attr("x", fmt.Sprintf("%.1f", x+barWidth/2)),
				g.Attr("y", fmt.Sprintf("%.0f", labelY)),
				g.Attr("class", "bar-label"),
				g.Attr("text-anchor", "middle"),
				g.Text(labels[i]),
			),
		)
	}

	return svgEl(chartHeight, nodes...)
}

// hourLabels returns "0".."23" for the hour-of-day charts.
func hourLabels() []string {
	labels := make([]string, 24)
	for h := 0; h < 24; h++ {
		labels[h] = fmt.Sprintf("%d", h)
	}
	return labels
}

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// scatterChart plots duration (y) against output size (x).
func scatterChart(points []domain.ScatterPoint) g.Node {
	var maxX, maxY float64
	for _, p := range points {
		if float64(p.SizeBytes) > maxX {
			maxX = float64(p.SizeBytes)
		}
		if p.DurationSecs > maxY {
			maxY = p.DurationSecs
		}
	}
	if maxX == 0 {
		maxX = 1
	}
	if maxY == 0 {
		maxY = 1
	}

	plotWidth := chartWidth - 2*chartPadLeft
	nodes := make([]g.Node, 0, len(points)+2)
	for _, p := range points {
		x := chartPadLeft + float64(p.SizeBytes)/maxX*plotWidth
		y := chartPadTop + plotHeight - p.DurationSecs/maxY*plotHeight
		nodes = append(nodes,
			g.El("circle",
				g.Attr("cx", fmt.Sprintf("%.1f", x)),
				g.Attr("cy", fmt.Sprintf("%.1f", y)),
				g.Attr("r", "3"),
				g.Attr("class", "dot"),
				g.El("title", g.Text(fmt.Sprintf("%s — %s, %s",
					p.ReportName, fmtSecs(p.DurationSecs), fmtBytes(float64(p.SizeBytes))))),
			),
		)
	}
	nodes = append(nodes,
		g.El("text",
			g.Attr("x", fmt.Sprintf("%.1f", chartPadLeft)),
			g.Attr("y", fmt.Sprintf("%.0f", labelY)),
			g.Attr("class", "bar-label"),
			g.Text("output size → (max "+fmtBytes(maxX)+")"),
		),
		g.El("text",
			g.Attr("x", fmt.Sprintf("%.1f", chartPadLeft)),
			g.Attr("y", fmt.Sprintf("%.0f", chartPadTop-2)),
			g.Attr("class", "bar-label"),
			g.Text("duration ↑ (max "+fmtSecs(maxY)+")"),
		),
	)

	return svgEl(chartHeight, nodes...)
}

// sparkline draws a compact chronological series, tinting failure points.
func sparkline(points []domain.SeriesPoint) g.Node {
	if len(points) == 0 {
		return g.Text("")
	}
	var maxY float64
	for _, p := range points {
		if p.Seconds > maxY {
			maxY = p.Seconds
		}
	}
	if maxY == 0 {
		maxY = 1
	}

	const height = 80.0
	plotWidth := chartWidth - 2*chartPadLeft
	step := plotWidth
	if len(points) > 1 {
		step = plotWidth / float64(len(points)-1)
	}

	nodes := make([]g.Node, 0, len(points))
	for i, p := range points {
		x := chartPadLeft + float64(i)*step
		y := 8 + (height-16)*(1-p.Seconds/maxY)
		class := "dot"
		if p.IsFailure {
			class = "dot dot-failure"
		}
		nodes = append(nodes,
			g.El("circle",
				g.Attr("cx", fmt.Sprintf("%.1f", x)),
				g.Attr("cy", fmt.Sprintf("%.1f", y)),
				g.Attr("r", "2.5"),
				g.Attr("class", class),
				g.El("title", g.Text(fmtTime(&p.Start)+" — "+fmtSecs(p.Seconds))),
			),
		)
	}

	return g.El("svg",
		g.Attr("viewBox", fmt.Sprintf("0 0 %.0f %.0f", chartWidth, height)),
		g.Attr("class", "chart spark"),
		g.Attr("role", "img"),
		g.Group(nodes),
	)
}
