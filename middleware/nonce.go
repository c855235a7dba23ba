package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"ict_forex_app_go/logger"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// ContentSecurityPolicy builds the landing page policy. Scripts need the nonce;
// the live backtest connects back to the same host over ws or wss.
func ContentSecurityPolicy(nonce string) string {
	directives := []string{
		"default-src 'self'",
		"script-src 'self' 'nonce-" + nonce + "'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"connect-src 'self' ws: wss:",
		"form-action 'self'",
		"base-uri 'self'",
		"frame-ancestors 'none'",
	}
	return strings.Join(directives, "; ")
}

// CSPNonce stores a per-request nonce in both contexts and sets the policy header
func CSPNonce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				// Without a nonce no inline or nonce-bound script may run
				logger.WithComponent("csp").WithError(err).Error("Failed to generate nonce")
				nonce = ""
			}

			c.Set(string(NonceKey), nonce)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy", ContentSecurityPolicy(nonce))
			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
