package kit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
)

const defaultRateWindow = time.Minute

// IPRateLimit allows limit requests per client IP within a sliding window.
// Clients are keyed by the connection's remote address only; forwarding
// headers are ignored so they cannot be rotated to reset the window.
func IPRateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	if window <= 0 {
		window = defaultRateWindow
	}
	retryAfter := strconv.Itoa(int(window.Seconds()))

	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", retryAfter)
			WriteError(w, r, http.StatusTooManyRequests, "too many requests", nil)
		}),
	)
}
