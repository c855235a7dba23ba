package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the burst size, refilled evenly across Window
	Requests int
	// Window is the time it takes to refill a full burst
	Window time.Duration
	// KeyFunc returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
	// Skipper bypasses the limiter for requests it returns true for
	Skipper func(c echo.Context) bool
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key
type RateLimiter struct {
	config RateLimitConfig
	limit  rate.Limit
	store  map[string]*limiterEntry
	mu     sync.Mutex
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}
	if config.Requests <= 0 {
		config.Requests = 1
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}

	rl := &RateLimiter{
		config: config,
		limit:  rate.Every(config.Window / time.Duration(config.Requests)),
		store:  make(map[string]*limiterEntry),
	}

	go rl.cleanup()

	return rl
}

// Allow reports whether a request for key may proceed now
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.store[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.config.Requests)}
		rl.store[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rl.config.Skipper != nil && rl.config.Skipper(c) {
				return next(c)
			}
			if !rl.Allow(rl.config.KeyFunc(c)) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": rl.config.Message})
			}
			return next(c)
		}
	}
}

// size returns the number of tracked keys
func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.store)
}

// prune drops keys idle for longer than a full window
func (rl *RateLimiter) prune(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, entry := range rl.store {
		if now.Sub(entry.lastSeen) > rl.config.Window {
			delete(rl.store, key)
		}
	}
}

// cleanup removes idle entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for now := range ticker.C {
		rl.prune(now)
	}
}

// SkipUnlessPost lets every method other than POST through untouched
func SkipUnlessPost(c echo.Context) bool {
	return c.Request().Method != http.MethodPost
}

// ContactRateLimiter limits contact form submissions to 10 per minute per IP.
// Other methods are answered with 405 by the handler and do not spend the budget.
var ContactRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 10,
	Window:   1 * time.Minute,
	Message:  "Too many form submissions. Please wait before trying again.",
	Skipper:  SkipUnlessPost,
})

// APIRateLimiter limits general API requests to 60 per minute per IP
var APIRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 60,
	Window:   1 * time.Minute,
	Message:  "Rate limit exceeded. Please slow down your requests.",
})
