package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"ict_forex_app_go/config"
	"ict_forex_app_go/logger"
	"ict_forex_app_go/metrics"
	"ict_forex_app_go/models"
	"ict_forex_app_go/services"
	"ict_forex_app_go/templates/components"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// MaxBacktestTicks bounds the ticks a single read-only request may simulate
const MaxBacktestTicks = 10000

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// BacktestResponse is a snapshot plus its projected chart
type BacktestResponse struct {
	models.BacktestSnapshot
	Chart models.ChartView `json:"chart"`
}

// backtestQuery parses seed and ticks, falling back to the configured seed
func backtestQuery(c echo.Context) (uint32, int, error) {
	cfg := c.Get("config").(*config.Config)

	seed := cfg.BacktestSeed
	if s := c.QueryParam("seed"); s != "" {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "seed must be an unsigned 32-bit integer")
		}
		seed = uint32(n)
	}

	ticks := 0
	if s := c.QueryParam("ticks"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > MaxBacktestTicks {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("ticks must be between 0 and %d", MaxBacktestTicks))
		}
		ticks = n
	}

	return seed, ticks, nil
}

func runBacktest(c echo.Context) (models.BacktestSnapshot, error) {
	seed, ticks, err := backtestQuery(c)
	if err != nil {
		return models.BacktestSnapshot{}, err
	}
	bt := services.NewBacktest(seed)
	bt.Advance(ticks)
	return bt.Snapshot(), nil
}

// BacktestHandler returns a deterministic snapshot for ?seed=&ticks=
func BacktestHandler(c echo.Context) error {
	snap, err := runBacktest(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, BacktestResponse{
		BacktestSnapshot: snap,
		Chart:            services.ProjectDefault(snap.Series).View(),
	})
}

// BacktestChartHandler renders the snapshot chart as SVG
func BacktestChartHandler(c echo.Context) error {
	snap, err := runBacktest(c)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "image/svg+xml")
	c.Response().WriteHeader(http.StatusOK)
	return components.BacktestChart(services.ProjectDefault(snap.Series)).Render(c.Request().Context(), c.Response().Writer)
}

// BacktestExportHandler downloads the snapshot as an XLSX workbook
func BacktestExportHandler(c echo.Context) error {
	snap, err := runBacktest(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := services.WriteSeriesWorkbook(&buf, snap); err != nil {
		logger.WithComponent("backtest").WithError(err).Error("Failed to build export")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build export")
	}

	filename := fmt.Sprintf("backtest_%d_%d.xlsx", snap.Seed, snap.Ticks)
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func newUpgrader(allowed []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, a := range allowed {
				if a == "*" || a == origin {
					return true
				}
			}
			return false
		},
	}
}

// BacktestStreamHandler upgrades to a WebSocket and drives one live session.
// Clients send {"action":"play|pause|toggle|speed","speed":n}; the server sends frames.
func BacktestStreamHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	seed, _, err := backtestQuery(c)
	if err != nil {
		return err
	}
	speed, _ := strconv.Atoi(c.QueryParam("speed"))

	conn, err := newUpgrader(cfg.AllowedOrigins).Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the error response
		return nil
	}
	defer conn.Close()

	session := services.NewSession(services.SessionConfig{
		Seed:         seed,
		BaseInterval: cfg.BacktestTickInterval,
		Speed:        speed,
	})
	log := logger.WithComponent("backtest").WithField("session_id", session.ID())
	log.Info("Live backtest session started")

	metrics.BacktestSessions.Inc()
	defer metrics.BacktestSessions.Dec()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	commands := make(chan services.Command, 8)
	frames := make(chan models.BacktestFrame, 1)

	// reader
	go func() {
		defer cancel()
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			mt, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if mt != websocket.TextMessage {
				continue
			}
			var cmd services.Command
			if err := json.Unmarshal(data, &cmd); err != nil {
				log.WithError(err).Debug("Ignoring malformed command")
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()

	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx, commands, frames)
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case frame := <-frames:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				log.WithError(err).Debug("Write failed, closing session")
				cancel()
				<-done
				return nil
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				cancel()
				<-done
				return nil
			}
		case <-ctx.Done():
			<-done
			log.Info("Live backtest session closed")
			return nil
		}
	}
}
