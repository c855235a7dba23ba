package services

import "math"

// LCG parameters (Numerical Recipes), modulus 2^32 via uint32 overflow
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
	lcgDivisor           = float64(math.MaxUint32)
)

// maxDraw is the largest float64 below 1
var maxDraw = math.Nextafter(1, 0)

// Stream is a small deterministic random stream for repeatable simulations.
// It is owned by a single Backtest and never shared.
type Stream struct {
	state uint32
}

// NewStream creates a stream starting from seed
func NewStream(seed uint32) *Stream {
	return &Stream{state: seed}
}

// Next advances the state and returns a value in [0, 1)
func (s *Stream) Next() float64 {
	s.state = lcgMultiplier*s.state + lcgIncrement
	if s.state == math.MaxUint32 {
		return maxDraw
	}
	return float64(s.state) / lcgDivisor
}

// State returns the current raw state
func (s *Stream) State() uint32 {
	return s.state
}
