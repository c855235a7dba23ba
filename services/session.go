package services

import (
	"context"
	"fmt"
	"time"

	"ict_forex_app_go/config"
	"ict_forex_app_go/metrics"
	"ict_forex_app_go/models"

	"github.com/google/uuid"
)

// Session commands accepted from clients
const (
	ActionPlay   = "play"
	ActionPause  = "pause"
	ActionToggle = "toggle"
	ActionSpeed  = "speed"
)

// Speed multipliers offered by the backtest card
const (
	MinSpeed = 1
	MaxSpeed = 4
)

// Command changes the run state or speed of a session
type Command struct {
	Action string `json:"action"`
	Speed  int    `json:"speed,omitempty"`
}

// SessionConfig configures a live backtest session
type SessionConfig struct {
	Seed         uint32
	BaseInterval time.Duration // tick period at 1x
	Speed        int
	Paused       bool
}

// Session drives one Backtest on a timer. All state is owned by the goroutine
// running Run; nothing else touches it.
type Session struct {
	id       string
	bt       *Backtest
	interval time.Duration
	speed    int
	running  bool
}

// NewSession creates a session. Invalid speeds fall back to 1x.
func NewSession(cfg SessionConfig) *Session {
	if cfg.BaseInterval <= 0 {
		cfg.BaseInterval = config.DefaultTickInterval
	}
	if !validSpeed(cfg.Speed) {
		cfg.Speed = MinSpeed
	}
	return &Session{
		id:       uuid.New().String(),
		bt:       NewBacktest(cfg.Seed),
		interval: cfg.BaseInterval,
		speed:    cfg.Speed,
		running:  !cfg.Paused,
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// TickInterval is the current period between ticks
func (s *Session) TickInterval() time.Duration {
	return s.interval / time.Duration(s.speed)
}

// Apply changes the session state. Rejected commands leave it untouched.
func (s *Session) Apply(cmd Command) error {
	switch cmd.Action {
	case ActionPlay:
		s.running = true
	case ActionPause:
		s.running = false
	case ActionToggle:
		s.running = !s.running
	case ActionSpeed:
		if !validSpeed(cmd.Speed) {
			return fmt.Errorf("speed must be between %d and %d, got %d", MinSpeed, MaxSpeed, cmd.Speed)
		}
		s.speed = cmd.Speed
	default:
		return fmt.Errorf("unknown action %q", cmd.Action)
	}
	return nil
}

// Frame returns the current state as a wire frame
func (s *Session) Frame() models.BacktestFrame {
	f := newFrame(s.bt.Snapshot(), s.running, s.speed)
	f.SessionID = s.id
	return f
}

// InitialFrame is the frame a fresh backtest for seed starts from. It belongs to
// no live session, so SessionID is empty.
func InitialFrame(seed uint32) models.BacktestFrame {
	return newFrame(NewBacktest(seed).Snapshot(), true, MinSpeed)
}

func newFrame(snap models.BacktestSnapshot, running bool, speed int) models.BacktestFrame {
	return models.BacktestFrame{
		Seed:    snap.Seed,
		Tick:    snap.Ticks,
		Running: running,
		Speed:   speed,
		Series:  snap.Series,
		Stats:   snap.Stats,
		Chart:   ProjectDefault(snap.Series).View(),
	}
}

// Run emits a frame at start, after every tick and after every accepted command,
// until ctx is cancelled. The ticker is replaced whenever speed or run state
// changes so at most one tick is pending.
func (s *Session) Run(ctx context.Context, commands <-chan Command, frames chan<- models.BacktestFrame) error {
	var (
		ticker *time.Ticker
		tickC  <-chan time.Time
	)
	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tickC = nil, nil
		}
	}
	reschedule := func() {
		stop()
		if s.running {
			ticker = time.NewTicker(s.TickInterval())
			tickC = ticker.C
		}
	}
	defer stop()

	emit := func() error {
		select {
		case frames <- s.Frame():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	reschedule()
	if err := emit(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if err := s.Apply(cmd); err != nil {
				continue
			}
			reschedule()
			if err := emit(); err != nil {
				return err
			}

		case <-tickC:
			s.bt.Tick()
			metrics.BacktestTicks.Inc()
			if err := emit(); err != nil {
				return err
			}
		}
	}
}

func validSpeed(speed int) bool {
	return speed >= MinSpeed && speed <= MaxSpeed
}
