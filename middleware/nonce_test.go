package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentSecurityPolicy(t *testing.T) {
	directives := strings.Split(ContentSecurityPolicy("abc123"), "; ")

	assert.Equal(t, []string{
		"default-src 'self'",
		"script-src 'self' 'nonce-abc123'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"connect-src 'self' ws: wss:",
		"form-action 'self'",
		"base-uri 'self'",
		"frame-ancestors 'none'",
	}, directives)
}

func TestCSPNonceOnLandingRoute(t *testing.T) {
	e := echo.New()
	e.Use(CSPNonce())

	var seen []string
	e.GET("/", func(c echo.Context) error {
		nonce := GetNonce(c.Request().Context())
		assert.Equal(t, nonce, c.Get(string(NonceKey)))
		seen = append(seen, nonce)
		return c.HTML(http.StatusOK, `<script nonce="`+nonce+`" src="/static/js/backtest.js"></script>`)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		csp := rec.Header().Get("Content-Security-Policy")
		assert.Contains(t, csp, "'nonce-"+seen[i]+"'")
		assert.Contains(t, csp, "connect-src 'self' ws: wss:")
		assert.Contains(t, rec.Body.String(), `nonce="`+seen[i]+`"`)
	}

	require.Len(t, seen, 2)
	assert.NotEmpty(t, seen[0])
	assert.NotEqual(t, seen[0], seen[1], "nonce must change per request")
}

func TestGetNonceMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", GetNonce(req.Context()))
}
