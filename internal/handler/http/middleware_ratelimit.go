package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"vaultguard/internal/logger"
	"vaultguard/internal/utils"
	"vaultguard/models"
)

// withRateLimit rejects clients that exceed the configured request budget
// within the sliding window. Requests are keyed by client address; behind a
// reverse proxy the original address is taken from X-Forwarded-For.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := h.limiter.Check(clientAddress(r))
		if decision.Allowed {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Warn().
			Str("uri", r.RequestURI).
			Dur("retry_after", decision.RetryAfter).
			Msg("request rate limited")

		retrySeconds := int(decision.RetryAfter.Seconds())
		if retrySeconds < 1 {
			retrySeconds = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(retrySeconds))

		// the validate endpoint answers with a verdict body so clients keep
		// a single response shape
		if r.URL.Path == "/api/license/validate" {
			verdict := models.Invalid(models.ReasonRateLimited)
			verdict.RetryAfter = decision.RetryAfter.Milliseconds()
			if verdict.RetryAfter < 1 {
				verdict.RetryAfter = 1
			}
			utils.WriteJSON(w, verdict, http.StatusTooManyRequests)
			return
		}

		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
	})
}

// clientAddress resolves the originating client address for rate-limit
// keying. The first entry of X-Forwarded-For wins when present; otherwise
// the connection's remote host is used.
func clientAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, found := strings.Cut(forwarded, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
