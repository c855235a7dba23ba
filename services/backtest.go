package services

import (
	"ict_forex_app_go/config"
	"ict_forex_app_go/models"
)

// DefaultSeed seeds the landing page simulation
const DefaultSeed = config.DefaultBacktestSeed

const (
	// SeriesWindow is the maximum number of values kept in a series
	SeriesWindow = 80
	// InitialSeriesLength is the number of values drawn when a backtest starts
	InitialSeriesLength = 60

	initialValue    = 100.0
	initialBias     = 0.47
	initialStepSize = 0.8

	drift           = 0.06
	shockScale      = 1.2
	meanRevertLag   = 20
	meanRevertScale = 0.01
)

// InitialStats are the statistics every backtest starts from
var InitialStats = models.BacktestStats{
	WinRate:  52,
	Risk:     1,
	MaxDD:    6.4,
	MonthRet: 2.1,
}

// Backtest owns a seeded stream, the visible price window and the running stats
type Backtest struct {
	seed   uint32
	stream *Stream
	series []float64
	stats  models.BacktestStats
	ticks  int
}

// NewBacktest seeds the stream and draws the initial gentle uptrend
func NewBacktest(seed uint32) *Backtest {
	stream := NewStream(seed)

	series := make([]float64, 0, SeriesWindow)
	v := initialValue
	for i := 0; i < InitialSeriesLength; i++ {
		r := stream.Next()
		v += (r - initialBias) * initialStepSize
		series = append(series, v)
	}

	return &Backtest{
		seed:   seed,
		stream: stream,
		series: series,
		stats:  InitialStats,
	}
}

// Tick draws two values from the stream and advances series and stats once
func (b *Backtest) Tick() {
	r := b.stream.Next()
	r2 := b.stream.Next()
	b.series, b.stats = Step(b.series, b.stats, r, r2)
	b.ticks++
}

// Advance runs n ticks
func (b *Backtest) Advance(n int) {
	for i := 0; i < n; i++ {
		b.Tick()
	}
}

// Snapshot returns a copy of the current state
func (b *Backtest) Snapshot() models.BacktestSnapshot {
	return models.BacktestSnapshot{
		Seed:   b.seed,
		Ticks:  b.ticks,
		Series: append([]float64(nil), b.series...),
		Stats:  b.stats,
	}
}

// Step computes the next series and stats from the previous ones and two draws.
// The input slice is never modified.
func Step(series []float64, stats models.BacktestStats, r, r2 float64) ([]float64, models.BacktestStats) {
	keep := series
	if len(keep) >= SeriesWindow {
		keep = keep[1:]
	}
	next := make([]float64, len(keep), max(SeriesWindow, len(keep)+1))
	copy(next, keep)

	if len(series) > 0 {
		last := series[len(series)-1]
		shock := (r - 0.5) * shockScale
		anchor := series[max(0, len(series)-meanRevertLag)]
		meanRevert := (anchor - last) * meanRevertScale
		next = append(next, last+drift+shock+meanRevert)
	}

	return next, models.BacktestStats{
		WinRate:  clamp(stats.WinRate+(r-0.5)*0.25, 45, 60),
		Risk:     stats.Risk,
		MaxDD:    clamp(stats.MaxDD+(r2-0.5)*0.18, 3.5, 10.5),
		MonthRet: clamp(stats.MonthRet+(r-0.46)*0.22, -3.5, 6.5),
	}
}

func clamp(n, lo, hi float64) float64 {
	return max(lo, min(hi, n))
}
