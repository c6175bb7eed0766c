package httpserver

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit configures the per-client request limiter.
type RateLimit struct {
	RequestsPerSecond rate.Limit
	Burst             int
	// ClientTTL bounds how long an idle client entry is kept.
	ClientTTL time.Duration
}

func DefaultRateLimit() RateLimit {
	return RateLimit{
		RequestsPerSecond: 50,
		Burst:             100,
		ClientTTL:         10 * time.Minute,
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware limits requests per remote host. Health and metrics
// endpoints are exempt so probes never get throttled.
func RateLimitMiddleware(config RateLimit) func(http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	cleanup := func(now time.Time) {
		for host, client := range clients {
			if now.Sub(client.lastSeen) > config.ClientTTL {
				delete(clients, host)
			}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthz" || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			now := time.Now()

			mu.Lock()
			client, ok := clients[host]
			if !ok {
				client = &clientLimiter{limiter: rate.NewLimiter(config.RequestsPerSecond, config.Burst)}
				clients[host] = client
			}
			client.lastSeen = now
			if len(clients) > 1024 {
				cleanup(now)
			}
			allowed := client.limiter.Allow()
			mu.Unlock()

			if !allowed {
				ReplyWithError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
