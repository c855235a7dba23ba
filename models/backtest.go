package models

import (
	"strconv"
	"strings"
)

// BacktestStats are the headline numbers shown under the live chart
type BacktestStats struct {
	WinRate  float64 `json:"win_rate"`  // percent, clamped to [45, 60]
	Risk     float64 `json:"risk"`      // percent per trade, static
	MaxDD    float64 `json:"max_dd"`    // percent, clamped to [3.5, 10.5]
	MonthRet float64 `json:"month_ret"` // percent, clamped to [-3.5, 6.5]
}

// BacktestSnapshot is an immutable copy of a backtest at a given tick
type BacktestSnapshot struct {
	Seed   uint32        `json:"seed"`
	Ticks  int           `json:"ticks"`
	Series []float64     `json:"series"`
	Stats  BacktestStats `json:"stats"`
}

// Point is a chart coordinate in SVG user space (y grows downward)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String formats the point the way SVG points attributes expect
func (p Point) String() string {
	return formatCoord(p.X) + "," + formatCoord(p.Y)
}

// ChartGeometry is the projection of a series into a fixed viewport
type ChartGeometry struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
	Points  []Point `json:"points"`
	Area    []Point `json:"area"`
	Last    Point   `json:"last"`
}

// PointsAttr renders the line as an SVG polyline points attribute
func (g ChartGeometry) PointsAttr() string {
	return joinPoints(g.Points)
}

// AreaAttr renders the filled area as an SVG polygon points attribute
func (g ChartGeometry) AreaAttr() string {
	return joinPoints(g.Area)
}

// BaselineAttr renders the bottom guide line
func (g ChartGeometry) BaselineAttr() string {
	y := g.Height - g.Padding
	return Point{X: g.Padding, Y: y}.String() + " " + Point{X: g.Width - g.Padding, Y: y}.String()
}

// ViewBox returns the SVG viewBox attribute value
func (g ChartGeometry) ViewBox() string {
	return "0 0 " + strconv.FormatFloat(g.Width, 'f', -1, 64) + " " + strconv.FormatFloat(g.Height, 'f', -1, 64)
}

func joinPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// BacktestFrame is one message of a live backtest session
type BacktestFrame struct {
	SessionID string        `json:"session_id,omitempty"`
	Seed      uint32        `json:"seed"`
	Tick      int           `json:"tick"`
	Running   bool          `json:"running"`
	Speed     int           `json:"speed"`
	Series    []float64     `json:"series"`
	Stats     BacktestStats `json:"stats"`
	Chart     ChartView     `json:"chart"`
}

// ChartView is the wire form of ChartGeometry, ready to drop into SVG attributes
type ChartView struct {
	ViewBox string  `json:"view_box"`
	Points  string  `json:"points"`
	Area    string  `json:"area"`
	LastX   float64 `json:"last_x"`
	LastY   float64 `json:"last_y"`
}

// View converts the geometry to its wire form
func (g ChartGeometry) View() ChartView {
	return ChartView{
		ViewBox: g.ViewBox(),
		Points:  g.PointsAttr(),
		Area:    g.AreaAttr(),
		LastX:   g.Last.X,
		LastY:   g.Last.Y,
	}
}
