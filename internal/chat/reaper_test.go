package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaperSweepEvictsOnlyIdleSessions(t *testing.T) {
	store := NewStore(newFakeEngine())

	stale, _, err := store.GetOrCreate("+573001110001")
	require.NoError(t, err)
	fresh, _, err := store.GetOrCreate("+573001110002")
	require.NoError(t, err)

	// age the stale session past the threshold
	stale.mu.Lock()
	stale.lastAccessed = time.Now().Add(-3 * time.Second)
	stale.mu.Unlock()
	fresh.Touch()

	reaper := NewReaper(store, time.Second, 2*time.Second)
	removed := reaper.Sweep()

	assert.Equal(t, 1, removed)
	_, ok := store.get("+573001110001")
	assert.False(t, ok, "idle session must be evicted")
	_, ok = store.get("+573001110002")
	assert.True(t, ok, "active session must survive")
}

func TestReaperKeepsSessionIdleExactlyAtThreshold(t *testing.T) {
	store := NewStore(newFakeEngine())

	sess, _, err := store.GetOrCreate("+573001110001")
	require.NoError(t, err)
	sess.mu.Lock()
	sess.lastAccessed = time.Now().Add(-time.Hour)
	sess.mu.Unlock()

	// threshold comfortably larger than the idle time: retained
	reaper := NewReaper(store, time.Minute, 2*time.Hour)
	assert.Equal(t, 0, reaper.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestReaperDefaultsApplied(t *testing.T) {
	reaper := NewReaper(NewStore(newFakeEngine()), 0, -time.Second)
	assert.Equal(t, DefaultSweepInterval, reaper.interval)
	assert.Equal(t, DefaultMaxIdle, reaper.maxIdle)
}

func TestReaperStartAndStopTerminatesCleanly(t *testing.T) {
	store := NewStore(newFakeEngine())
	reaper := NewReaper(store, 10*time.Millisecond, time.Hour)

	reaper.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	reaper.Stop()

	select {
	case <-reaper.done:
	default:
		t.Fatal("reaper goroutine still running after Stop")
	}

	// Stop is safe to call again
	reaper.Stop()
}

func TestReaperEvictionThenNewMessageCreatesFreshSession(t *testing.T) {
	engine := newFakeEngine()
	store := NewStore(engine)
	service := NewService(store, 0)

	const user = "+573000000000"

	sess, _, err := store.GetOrCreate(user)
	require.NoError(t, err)
	sess.mu.Lock()
	sess.lastAccessed = time.Now().Add(-3 * time.Second)
	sess.mu.Unlock()

	reaper := NewReaper(store, time.Second, 2*time.Second)
	require.Equal(t, 1, reaper.Sweep())

	// post-eviction continuity: the next message succeeds on a new session
	reply := service.HandleMessage(context.Background(), user, "hola")
	assert.Equal(t, "reply to "+user, reply)

	recreated, ok := store.get(user)
	require.True(t, ok)
	assert.NotSame(t, sess, recreated)
	assert.WithinDuration(t, time.Now(), recreated.LastAccessed(), time.Second)
}
