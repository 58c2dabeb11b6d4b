package chat

import (
	"context"
	"sync"
	"time"

	logx "github.com/liwaisi-tech/ai-micro-businesses-assistant/pkg/logger"
)

const (
	DefaultSweepInterval = 30 * time.Minute
	DefaultMaxIdle       = time.Hour
)

// Reaper periodically removes sessions whose last access is older than the
// configured idle threshold. Eviction is advisory: the service transparently
// recreates a session if a message arrives right after a sweep.
type Reaper struct {
	store    *Store
	interval time.Duration
	maxIdle  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewReaper builds a reaper over the given store. Non-positive durations
// fall back to the defaults.
func NewReaper(store *Store, interval, maxIdle time.Duration) *Reaper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	return &Reaper{
		store:    store,
		interval: interval,
		maxIdle:  maxIdle,
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. The loop stops when ctx is cancelled or
// Stop is called.
func (r *Reaper) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		logx.Info().
			Dur("interval", r.interval).
			Dur("max_idle", r.maxIdle).
			Msg("session reaper started")

		for {
			select {
			case <-ctx.Done():
				logx.Info().Msg("session reaper stopped")
				return
			case <-ticker.C:
				r.Sweep()
			}
		}
	}()
}

// Stop cancels the sweep loop and waits for it to exit, so shutdown never
// leaves an orphaned timer behind.
func (r *Reaper) Stop() {
	r.once.Do(func() {
		if r.cancel != nil {
			r.cancel()
			<-r.done
		}
	})
}

// Sweep evicts every session idle for longer than the threshold. Each
// removal is independent; a session that disappears mid-sweep (a request
// racing us, or an explicit eviction) is simply skipped.
func (r *Reaper) Sweep() int {
	now := time.Now()
	removed := 0

	for _, userID := range r.store.UserIDs() {
		sess, ok := r.store.get(userID)
		if !ok {
			continue
		}
		idle := now.Sub(sess.LastAccessed())
		if idle <= r.maxIdle {
			continue
		}
		r.store.Remove(userID)
		removed++
		logx.Info().
			Str("user_id", userID).
			Dur("idle", idle).
			Msg("evicted idle chat session")
	}

	if removed > 0 {
		logx.Debug().Int("removed", removed).Int("remaining", r.store.Len()).Msg("reaper sweep finished")
	}
	return removed
}
