package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/transport/http/response"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// RateLimit counts requests per client (IP and user agent) in a fixed Redis
// window that opens on the client's first request. When Redis cannot be
// reached the process-local token bucket decides.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			userAgent := a.getUA(r)
			clientIP := a.getClientIP(r)
			cacheKey := shared.BuildCacheKey(constant.CacheKeyRateLimit, clientIP, userAgent)

			hits, err := a.cache.Incr(r.Context(), cacheKey, time.Duration(windowSecs)*time.Second)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter cache unavailable, using local limiter")
				a.limitLocally(w, r, next, cacheKey)

				return
			}

			count := int(hits)
			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) limitLocally(w http.ResponseWriter, r *http.Request, next http.Handler, key string) {
	if !a.localLimiter(key).Allow() {
		response.WithRequestLimitExceeded(w)

		return
	}

	next.ServeHTTP(w, r)
}

// localLimiter refills MaxRequests tokens evenly over the window.
func (a *appMiddleware) localLimiter(key string) *rate.Limiter {
	a.fallbackMu.Lock()
	defer a.fallbackMu.Unlock()

	limiter, ok := a.fallback[key]
	if !ok {
		maxReqs := max(1, a.config.App.RateLimiter.MaxRequests)
		window := time.Duration(max(1, a.config.App.RateLimiter.WindowSeconds)) * time.Second

		limiter = rate.NewLimiter(rate.Every(window/time.Duration(maxReqs)), maxReqs)
		a.fallback[key] = limiter
	}

	return limiter
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For may list several hops; the first is the client.
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
