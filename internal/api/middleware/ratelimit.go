package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	appErr "github.com/megareality/estate/pkg/errors"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

type visitors struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	lastSweep time.Time
	rps       rate.Limit
	burst     int
}

func getIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(ip)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (v *visitors) allow(ip string, now time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if now.Sub(v.lastSweep) > 5*time.Minute {
		for k, e := range v.entries {
			if now.Sub(e.last) > 10*time.Minute {
				delete(v.entries, k)
			}
		}
		v.lastSweep = now
	}

	e, ok := v.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.entries[ip] = e
	}
	e.last = now
	return e.limiter.AllowN(now, 1)
}

// RateLimit applies a per-IP token bucket limiter. rps <= 0 disables it.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	v := &visitors{entries: map[string]*limiterEntry{}, rps: rate.Limit(rps), burst: burst, lastSweep: time.Now()}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.allow(getIP(r), time.Now()) {
				writeJSONError(w, http.StatusTooManyRequests, appErr.CodeUnavailable, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
