package middlewares

import (
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// clientBucket is the limiter state of one remote address.
type clientBucket struct {
	limiter      *rate.Limiter
	lastSeen     time.Time
	blockedUntil time.Time
}

// RateLimiter is a per-IP token bucket. A client that empties its bucket
// is blocked for blockTime. Buckets idle for longer than staleAfter are
// dropped on the next sweep.
type RateLimiter struct {
	mu         sync.Mutex
	clients    map[string]*clientBucket
	every      rate.Limit
	burst      int
	blockTime  time.Duration
	staleAfter time.Duration
	lastSweep  time.Time
	now        func() time.Time
	log        *zap.Logger
}

// NewRateLimiter allows burst requests at once, refilling one token every
// per.
func NewRateLimiter(log *zap.Logger, burst int, per, blockTime time.Duration) *RateLimiter {
	staleAfter := per * time.Duration(burst)
	if staleAfter < blockTime {
		staleAfter = blockTime
	}
	return &RateLimiter{
		clients:    make(map[string]*clientBucket),
		every:      rate.Every(per),
		burst:      burst,
		blockTime:  blockTime,
		staleAfter: staleAfter,
		now:        time.Now,
		log:        log,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if wait, ok := r.admit(clientIP(req)); !ok {
			r.reject(w, req, wait)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// admit reports whether ip may proceed, and otherwise how long it has to
// wait.
func (r *RateLimiter) admit(ip string) (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	client, ok := r.clients[ip]
	if !ok {
		client = &clientBucket{limiter: rate.NewLimiter(r.every, r.burst)}
		r.clients[ip] = client
	}
	client.lastSeen = now

	if now.Before(client.blockedUntil) {
		return client.blockedUntil.Sub(now), false
	}
	if !client.limiter.AllowN(now, 1) {
		client.blockedUntil = now.Add(r.blockTime)
		return r.blockTime, false
	}
	return 0, true
}

func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.staleAfter {
		return
	}
	r.lastSweep = now
	for ip, client := range r.clients {
		if now.Sub(client.lastSeen) > r.staleAfter && now.After(client.blockedUntil) {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func (r *RateLimiter) reject(w http.ResponseWriter, req *http.Request, retryAfter time.Duration) {
	r.log.Warn("Rate limit exceeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(req.Context())),
		zap.String(constvars.LoggingRemoteAddrKey, req.RemoteAddr),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
	)
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())+1))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil))
}

func clientIP(req *http.Request) string {
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return ip
}
