package services

import (
	"math"

	"ict_forex_app_go/models"
)

// Default viewport of the landing page backtest card
const (
	ChartWidth   = 220.0
	ChartHeight  = 80.0
	ChartPadding = 8.0

	minSpan = 1e-6
)

// ProjectDefault projects a series into the landing page viewport
func ProjectDefault(series []float64) models.ChartGeometry {
	return Project(series, ChartWidth, ChartHeight, ChartPadding)
}

// Project maps series values to SVG coordinates. Higher values get smaller y.
// A single value is drawn at the horizontal centre; an empty series yields no points.
func Project(series []float64, w, h, pad float64) models.ChartGeometry {
	g := models.ChartGeometry{Width: w, Height: h, Padding: pad}
	bottom := h - pad

	if len(series) == 0 {
		g.Points = []models.Point{}
		g.Area = []models.Point{{X: pad, Y: bottom}, {X: w - pad, Y: bottom}}
		g.Last = models.Point{X: w / 2, Y: bottom}
		return g
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range series {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := math.Max(minSpan, hi-lo)

	n := len(series)
	g.Points = make([]models.Point, n)
	for i, v := range series {
		x := w / 2
		if n > 1 {
			x = (float64(i)/float64(n-1))*(w-pad*2) + pad
		}
		y := h - ((v-lo)/span)*(h-pad*2) - pad
		g.Points[i] = models.Point{X: x, Y: y}
	}

	g.Area = make([]models.Point, 0, n+2)
	g.Area = append(g.Area, models.Point{X: pad, Y: bottom})
	g.Area = append(g.Area, g.Points...)
	g.Area = append(g.Area, models.Point{X: w - pad, Y: bottom})

	g.Last = g.Points[n-1]
	return g
}
