package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// bucketIdleTTL is how long an untouched bucket survives a sweep.
const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter. Buckets of idle clients
// are swept in the background until Stop is called.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	tokens   float64
	capacity float64
	perSec   float64
	last     time.Time
}

// NewRateLimiter creates a limiter that sweeps idle buckets every interval.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.sweepLoop(interval)
	return rl
}

// Stop ends the sweep goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows each client host maxPerMinute requests per minute with bursts
// up to the same amount. A non-positive maxPerMinute disables limiting.
// Rejected requests get 429 with Retry-After in whole seconds.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, wait := rl.take(clientHost(r), float64(maxPerMinute))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token for key. When none is available it reports how long
// until one will be.
func (rl *RateLimiter) take(key string, perMinute float64) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: perMinute, capacity: perMinute, perSec: perMinute / 60, last: now}
		rl.buckets[key] = b
	}

	b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.last).Seconds()*b.perSec)
	b.last = now

	if b.tokens < 1 {
		deficit := 1 - b.tokens
		return false, time.Duration(deficit * 60 / b.capacity * float64(time.Second))
	}
	b.tokens--
	return true, 0
}

// sweep drops buckets untouched for longer than bucketIdleTTL.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.last) > bucketIdleTTL {
			delete(rl.buckets, key)
		}
	}
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// clientHost strips the port so one client shares a bucket across connections.
func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
