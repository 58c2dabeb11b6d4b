package chat

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine records every message per user and replies with a canned or
// per-call response.
type fakeEngine struct {
	mu       sync.Mutex
	opened   map[string]int
	messages map[string][]string
	reply    func(userID, message string) (string, error)
	openErr  error
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		opened:   make(map[string]int),
		messages: make(map[string][]string),
	}
}

func (f *fakeEngine) Open(userID string) (Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return nil, f.openErr
	}
	f.opened[userID]++
	return &fakeConversation{engine: f, userID: userID}, nil
}

func (f *fakeEngine) record(userID, message string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[userID] = append(f.messages[userID], message)
	if f.reply != nil {
		return f.reply(userID, message)
	}
	return fmt.Sprintf("reply to %s", userID), nil
}

type fakeConversation struct {
	engine *fakeEngine
	userID string
}

func (c *fakeConversation) Send(ctx context.Context, message string) (string, error) {
	return c.engine.record(c.userID, message)
}

func TestStoreGetOrCreateIsIdempotent(t *testing.T) {
	engine := newFakeEngine()
	store := NewStore(engine)

	first, created, err := store.GetOrCreate("+573001112233")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := store.GetOrCreate("+573001112233")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, second, "same user id must return the same session")
	assert.Equal(t, 1, engine.opened["+573001112233"], "conversation opened once")
}

func TestStoreTracksUsersIndependently(t *testing.T) {
	store := NewStore(newFakeEngine())

	a, _, err := store.GetOrCreate("+573001110001")
	require.NoError(t, err)
	b, _, err := store.GetOrCreate("+573001110002")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, store.Len())
}

func TestStoreRemoveIsIdempotent(t *testing.T) {
	store := NewStore(newFakeEngine())

	_, _, err := store.GetOrCreate("+573001110001")
	require.NoError(t, err)

	store.Remove("+573001110001")
	assert.Equal(t, 0, store.Len())

	// second removal of a gone session must not panic or error
	store.Remove("+573001110001")
	store.Remove("+never-existed")
	assert.Equal(t, 0, store.Len())
}

func TestStoreTouchOnMissingSessionIsNoop(t *testing.T) {
	store := NewStore(newFakeEngine())
	store.Touch("+573000000000")
	assert.Equal(t, 0, store.Len())
}

func TestStoreUserIDsReturnsSnapshot(t *testing.T) {
	store := NewStore(newFakeEngine())

	for i := 0; i < 3; i++ {
		_, _, err := store.GetOrCreate(fmt.Sprintf("+57300111000%d", i))
		require.NoError(t, err)
	}

	snapshot := store.UserIDs()
	require.Len(t, snapshot, 3)

	store.Remove(snapshot[0])
	assert.Len(t, snapshot, 3, "snapshot must not change after registry mutation")
	assert.Equal(t, 2, store.Len())
}

func TestStoreRecreatesAfterRemoval(t *testing.T) {
	engine := newFakeEngine()
	store := NewStore(engine)

	first, _, err := store.GetOrCreate("+573001112233")
	require.NoError(t, err)
	firstAccess := first.LastAccessed()

	store.Remove("+573001112233")

	fresh, created, err := store.GetOrCreate("+573001112233")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotSame(t, first, fresh)
	assert.False(t, fresh.LastAccessed().Before(firstAccess))
}

func TestStoreConcurrentGetOrCreateAndRemove(t *testing.T) {
	store := NewStore(newFakeEngine())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		userID := fmt.Sprintf("+5730011%05d", i%10)
		go func() {
			defer wg.Done()
			_, _, err := store.GetOrCreate(userID)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			store.Remove(userID)
		}()
	}
	wg.Wait()

	// registry must still be internally consistent
	for _, id := range store.UserIDs() {
		sess, ok := store.get(id)
		require.True(t, ok)
		assert.Equal(t, id, sess.UserID)
	}
}
