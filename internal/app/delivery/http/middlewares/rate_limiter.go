package middlewares

import (
	"net"
	"net/http"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const formRateLimitMessage = "Too many submissions, please wait a few minutes and try again."

type submissionClient struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

// SubmissionLimiter throttles form submissions per client. A client that
// runs out of tokens is blocked for blockTime. Safe methods pass through.
// Clients idle for longer than per+blockTime are forgotten.
type SubmissionLimiter struct {
	clients   map[string]*submissionClient
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	keyFunc   httprate.KeyFunc
	lastSweep time.Time
	now       func() time.Time
	log       *zap.Logger
}

func NewSubmissionLimiter(requests int, per, blockTime time.Duration, keyFunc httprate.KeyFunc, logger *zap.Logger) *SubmissionLimiter {
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}
	return &SubmissionLimiter{
		clients:   make(map[string]*submissionClient),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		keyFunc:   keyFunc,
		now:       time.Now,
		log:       logger,
	}
}

func (l *SubmissionLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		key, err := l.keyFunc(r)
		if err != nil || key == "" {
			key, _, err = net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}
		}

		if !l.allow(key) {
			l.log.Warn("SubmissionLimiter.Limit blocked submission",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingRemoteAddrKey, key),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			http.Error(w, formRateLimitMessage, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *SubmissionLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweepLocked(now)

	client, exists := l.clients[key]
	if exists && !client.blockedUntil.IsZero() {
		if now.Before(client.blockedUntil) {
			client.lastSeen = now
			return false
		}
		delete(l.clients, key)
		exists = false
	}

	if !exists {
		client = &submissionClient{
			limiter: rate.NewLimiter(rate.Every(l.per/time.Duration(max(l.requests, 1))), l.requests),
		}
		l.clients[key] = client
	}
	client.lastSeen = now

	if !client.limiter.AllowN(now, 1) {
		client.blockedUntil = now.Add(l.blockTime)
		return false
	}
	return true
}

// sweepLocked runs at most once per window. By the time a client has been
// idle for per+blockTime its bucket is full and any block has lapsed, so
// dropping it changes nothing for that client.
func (l *SubmissionLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.per {
		return
	}
	l.lastSweep = now

	idleAfter := l.per + l.blockTime
	for key, client := range l.clients {
		if now.Sub(client.lastSeen) > idleAfter {
			delete(l.clients, key)
		}
	}
}
