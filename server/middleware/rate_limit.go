package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter tracks the token bucket of one client IP.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterPool struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
}

func newRateLimiterPool(rps float64, burst int) *rateLimiterPool {
	pool := &rateLimiterPool{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go pool.cleanup()
	return pool
}

func (p *rateLimiterPool) get(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	client, ok := p.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(p.rps, p.burst)}
		p.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

// cleanup drops buckets of clients idle for over three minutes.
func (p *rateLimiterPool) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		p.mu.Lock()
		for ip, client := range p.clients {
			if time.Since(client.lastSeen) > 3*time.Minute {
				delete(p.clients, ip)
			}
		}
		p.mu.Unlock()
	}
}

// GinRateLimitMiddleware throttles requests per client IP. Each client gets
// its own token bucket refilled at rps with the given burst.
func GinRateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	pool := newRateLimiterPool(rps, burst)

	return func(c *gin.Context) {
		limiter := pool.get(c.ClientIP())
		if !limiter.Allow() {
			slog.Warn("Rate limit exceeded",
				"client_ip", c.ClientIP(),
				"path", c.Request.URL.Path,
				"request_id", GetRequestIDFromGin(c),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "Terlalu banyak request, coba lagi nanti",
			})
			return
		}

		c.Next()
	}
}
