// Package rate throttles callers identified by a key, such as a remote
// address, with one token bucket per key.
package rate

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Config struct {
	Burst    int           `conf:"default:5"`
	Interval time.Duration `conf:"default:2s"`
	Expiry   time.Duration `conf:"default:10m"`
}

// Limiter lets each key spend Burst requests at once, refilled by one every
// Interval. Keys unseen for Expiry are forgotten.
type Limiter struct {
	cfg     Config
	clients map[string]*clientLimiter
	mu      sync.Mutex
	done    chan struct{}
	once    sync.Once
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewLimiter(cfg Config) *Limiter {
	lm := &Limiter{
		cfg:     cfg,
		clients: make(map[string]*clientLimiter),
		done:    make(chan struct{}),
	}
	go lm.refresh()
	return lm
}

func (l *Limiter) Check(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[id]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(l.cfg.Interval), l.cfg.Burst),
		}
		l.clients[id] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter.Allow()
}

// Stop ends the eviction loop. Check keeps working afterwards.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.done) })
}

func (l *Limiter) refresh() {
	period := l.cfg.Expiry
	if period <= 0 || period > time.Minute {
		period = time.Minute
	}

	t := time.NewTicker(period)
	defer t.Stop()

	for {
		select {
		case <-l.done:
			return
		case now := <-t.C:
			l.evict(now)
		}
	}
}

func (l *Limiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, v := range l.clients {
		if now.Sub(v.lastAccess) > l.cfg.Expiry {
			delete(l.clients, id)
		}
	}
}

func (l *Limiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
