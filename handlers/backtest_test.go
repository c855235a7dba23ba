package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ict_forex_app_go/models"
	"ict_forex_app_go/services"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBacktestHandler(t *testing.T) {
	t.Run("DefaultSeedOneTick", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/backtest?ticks=1", nil)

		err := BacktestHandler(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp BacktestResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint32(20251215), resp.Seed)
		assert.Equal(t, 1, resp.Ticks)
		require.Len(t, resp.Series, services.InitialSeriesLength+1)
		assert.InDelta(t, 98.81352788008665, resp.Series[len(resp.Series)-1], 1e-9)
		assert.InDelta(t, 51.92133428984003, resp.Stats.WinRate, 1e-9)
		assert.InDelta(t, 6.412812414477303, resp.Stats.MaxDD, 1e-9)
		assert.InDelta(t, 2.0395741750592307, resp.Stats.MonthRet, 1e-9)
		assert.Equal(t, 1.0, resp.Stats.Risk)
		assert.Equal(t, "0 0 220 80", resp.Chart.ViewBox)
		assert.InDelta(t, 212.0, resp.Chart.LastX, 1e-9)
	})

	t.Run("Deterministic", func(t *testing.T) {
		_, c1, rec1 := setupEcho(http.MethodGet, "/api/backtest?seed=42&ticks=250", nil)
		_, c2, rec2 := setupEcho(http.MethodGet, "/api/backtest?seed=42&ticks=250", nil)
		require.NoError(t, BacktestHandler(c1))
		require.NoError(t, BacktestHandler(c2))
		assert.Equal(t, rec1.Body.String(), rec2.Body.String())

		var resp BacktestResponse
		require.NoError(t, json.Unmarshal(rec1.Body.Bytes(), &resp))
		assert.Len(t, resp.Series, services.SeriesWindow)
	})

	t.Run("InvalidParams", func(t *testing.T) {
		for _, q := range []string{"ticks=-1", "ticks=10001", "ticks=abc", "seed=-5", "seed=4294967296"} {
			_, c, _ := setupEcho(http.MethodGet, "/api/backtest?"+q, nil)
			err := BacktestHandler(c)
			require.Error(t, err, q)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok, q)
			assert.Equal(t, http.StatusBadRequest, he.Code, q)
		}
	})
}

func TestBacktestChartHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/api/backtest/chart.svg?ticks=5", nil)

	err := BacktestChartHandler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, body, `viewBox="0 0 220 80"`)
	assert.Contains(t, body, `id="bt-area"`)
	assert.Contains(t, body, `id="bt-last"`)
}

func TestBacktestExportHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/api/backtest/export.xlsx?seed=7&ticks=3", nil)

	err := BacktestExportHandler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=backtest_7_3.xlsx", rec.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Series")
	require.NoError(t, err)
	assert.Len(t, rows, services.InitialSeriesLength+3+1)

	seed, err := f.GetCellValue("Stats", "B2")
	require.NoError(t, err)
	assert.Equal(t, "7", seed)
}

func newStreamServer(t *testing.T) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.Use(configMiddleware(testConfig()))
	e.GET("/ws/backtest", BacktestStreamHandler)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func readFrame(t *testing.T, conn *websocket.Conn) models.BacktestFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f models.BacktestFrame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestBacktestStreamHandler(t *testing.T) {
	srv := newStreamServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/backtest?seed=20251215&speed=2"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	first := readFrame(t, conn)
	assert.NotEmpty(t, first.SessionID)
	assert.Equal(t, uint32(20251215), first.Seed)
	assert.Equal(t, 0, first.Tick)
	assert.Equal(t, 2, first.Speed)
	assert.True(t, first.Running)
	assert.Len(t, first.Series, services.InitialSeriesLength)

	ticked := readFrame(t, conn)
	assert.Equal(t, 1, ticked.Tick)
	assert.Equal(t, first.SessionID, ticked.SessionID)
	assert.InDelta(t, 98.81352788008665, ticked.Series[len(ticked.Series)-1], 1e-9)

	require.NoError(t, conn.WriteJSON(services.Command{Action: services.ActionPause}))
	var paused models.BacktestFrame
	for {
		paused = readFrame(t, conn)
		if !paused.Running {
			break
		}
	}

	require.NoError(t, conn.WriteJSON(services.Command{Action: services.ActionSpeed, Speed: 4}))
	sped := readFrame(t, conn)
	assert.Equal(t, 4, sped.Speed)
	assert.False(t, sped.Running)
	assert.Equal(t, paused.Tick, sped.Tick)
}

func TestBacktestStreamRejectsOrigin(t *testing.T) {
	e := echo.New()
	cfg := testConfig()
	cfg.AllowedOrigins = []string{"https://icttradinghub.com"}
	e.Use(configMiddleware(cfg))
	e.GET("/ws/backtest", BacktestStreamHandler)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/backtest"
	header := http.Header{"Origin": {"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	assert.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
