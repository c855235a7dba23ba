package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"sync"
	"time"

	"ict_forex_app_go/config"
	"ict_forex_app_go/services"

	"github.com/labstack/echo/v4"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:          "test",
		AppURL:               "https://icttradinghub.com",
		BacktestSeed:         config.DefaultBacktestSeed,
		BacktestTickInterval: 20 * time.Millisecond,
		EmailTimeout:         time.Second,
		AllowedOrigins:       []string{"*"},
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// configMiddleware mirrors the server's config injection for httptest servers
func configMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	}
}

// stubSender is an EmailSender that records emails or fails with err
type stubSender struct {
	mu   sync.Mutex
	sent []*services.Email
	err  error
}

func (s *stubSender) Send(ctx context.Context, email *services.Email) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, email)
	return "msg_test", nil
}
