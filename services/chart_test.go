package services

import (
	"math"
	"strings"
	"testing"

	"ict_forex_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectBasic(t *testing.T) {
	g := ProjectDefault([]float64{1, 3, 2})

	require.Len(t, g.Points, 3)
	assert.Equal(t, models.Point{X: 8, Y: 72}, g.Points[0])
	assert.Equal(t, models.Point{X: 110, Y: 8}, g.Points[1])
	assert.Equal(t, models.Point{X: 212, Y: 40}, g.Points[2])
	assert.Equal(t, g.Points[2], g.Last)

	require.Len(t, g.Area, 5)
	assert.Equal(t, models.Point{X: 8, Y: 72}, g.Area[0])
	assert.Equal(t, models.Point{X: 212, Y: 72}, g.Area[4])

	assert.Equal(t, "8.00,72.00 110.00,8.00 212.00,40.00", g.PointsAttr())
	assert.Equal(t, "8.00,72.00 8.00,72.00 110.00,8.00 212.00,40.00 212.00,72.00", g.AreaAttr())
	assert.Equal(t, "8.00,72.00 212.00,72.00", g.BaselineAttr())
	assert.Equal(t, "0 0 220 80", g.ViewBox())
}

func TestProjectFlatSeries(t *testing.T) {
	g := ProjectDefault([]float64{5, 5, 5, 5})
	for _, p := range g.Points {
		assert.False(t, math.IsNaN(p.Y))
		assert.Equal(t, 72.0, p.Y)
	}
}

func TestProjectSinglePoint(t *testing.T) {
	g := ProjectDefault([]float64{42})
	require.Len(t, g.Points, 1)
	assert.Equal(t, models.Point{X: 110, Y: 72}, g.Points[0])
	assert.Equal(t, g.Points[0], g.Last)
	assert.Len(t, g.Area, 3)
}

func TestProjectEmpty(t *testing.T) {
	g := ProjectDefault(nil)
	assert.Empty(t, g.Points)
	assert.Equal(t, "", g.PointsAttr())
	assert.Equal(t, models.Point{X: 110, Y: 72}, g.Last)
}

func TestProjectIdempotent(t *testing.T) {
	series := NewBacktest(testSeed).Snapshot().Series
	a := ProjectDefault(series)
	b := ProjectDefault(series)
	assert.Equal(t, a, b)
}

func TestProjectStaysInViewport(t *testing.T) {
	bt := NewBacktest(testSeed)
	bt.Advance(100)
	g := ProjectDefault(bt.Snapshot().Series)

	require.Len(t, g.Points, SeriesWindow)
	for _, p := range g.Points {
		assert.GreaterOrEqual(t, p.X, ChartPadding-1e-9)
		assert.LessOrEqual(t, p.X, ChartWidth-ChartPadding+1e-9)
		assert.GreaterOrEqual(t, p.Y, ChartPadding-1e-9)
		assert.LessOrEqual(t, p.Y, ChartHeight-ChartPadding+1e-9)
	}
	assert.InDelta(t, ChartWidth-ChartPadding, g.Last.X, 1e-9)
	assert.Equal(t, SeriesWindow, len(strings.Fields(g.PointsAttr())))
}

func TestProjectCustomViewport(t *testing.T) {
	g := Project([]float64{0, 10}, 100, 50, 0)
	assert.Equal(t, models.Point{X: 0, Y: 50}, g.Points[0])
	assert.Equal(t, models.Point{X: 100, Y: 0}, g.Points[1])
}
