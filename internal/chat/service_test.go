package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceHandleMessageReturnsEngineReply(t *testing.T) {
	engine := newFakeEngine()
	engine.reply = func(userID, message string) (string, error) {
		return "¡Hola! ¿En qué te ayudo?", nil
	}
	service := NewService(NewStore(engine), 0)

	reply := service.HandleMessage(context.Background(), "+573001112233", "hola")
	assert.Equal(t, "¡Hola! ¿En qué te ayudo?", reply)
	assert.Equal(t, []string{"hola"}, engine.messages["+573001112233"])
}

func TestServiceHandleMessageFallbackOnEngineError(t *testing.T) {
	engine := newFakeEngine()
	engine.reply = func(userID, message string) (string, error) {
		return "", errors.New("upstream timeout")
	}
	store := NewStore(engine)
	service := NewService(store, 0)

	reply := service.HandleMessage(context.Background(), "+573001112233", "hola")
	assert.Equal(t, FallbackReply, reply)

	// the session survives the failure
	_, ok := store.get("+573001112233")
	assert.True(t, ok)
}

func TestServiceHandleMessageFallbackWhenOpenFails(t *testing.T) {
	engine := newFakeEngine()
	engine.openErr = errors.New("engine unavailable")
	service := NewService(NewStore(engine), 0)

	reply := service.HandleMessage(context.Background(), "+573001112233", "hola")
	assert.Equal(t, FallbackReply, reply)
}

func TestServiceHandleMessageTouchesSession(t *testing.T) {
	engine := newFakeEngine()
	store := NewStore(engine)
	service := NewService(store, 0)

	const user = "+573001112233"
	sess, _, err := store.GetOrCreate(user)
	require.NoError(t, err)

	sess.mu.Lock()
	sess.lastAccessed = time.Now().Add(-time.Minute)
	sess.mu.Unlock()
	before := sess.LastAccessed()

	service.HandleMessage(context.Background(), user, "hola")

	assert.True(t, !sess.LastAccessed().Before(before), "last access must be monotonic across handling")
	assert.WithinDuration(t, time.Now(), sess.LastAccessed(), time.Second)
}

func TestServiceHandleMessageForwardsEmptyMessage(t *testing.T) {
	engine := newFakeEngine()
	service := NewService(NewStore(engine), 0)

	service.HandleMessage(context.Background(), "+573001112233", "")
	assert.Equal(t, []string{""}, engine.messages["+573001112233"])
}

func TestServiceIsolatesUsers(t *testing.T) {
	engine := newFakeEngine()
	service := NewService(NewStore(engine), 0)

	replyA := service.HandleMessage(context.Background(), "+573001110001", "mensaje de A")
	replyB := service.HandleMessage(context.Background(), "+573001110002", "mensaje de B")

	assert.Equal(t, "reply to +573001110001", replyA)
	assert.Equal(t, "reply to +573001110002", replyB)
	assert.Equal(t, []string{"mensaje de A"}, engine.messages["+573001110001"])
	assert.Equal(t, []string{"mensaje de B"}, engine.messages["+573001110002"])
}

func TestServiceAppliesRequestTimeout(t *testing.T) {
	engine := newFakeEngine()
	gotDeadline := make(chan bool, 1)
	engine.reply = func(userID, message string) (string, error) {
		return "ok", nil
	}
	store := NewStore(engine)

	// wrap the conversation to observe the context
	sess, _, err := store.GetOrCreate("+573001112233")
	require.NoError(t, err)
	inner := sess.conv
	sess.conv = conversationFunc(func(ctx context.Context, message string) (string, error) {
		_, ok := ctx.Deadline()
		gotDeadline <- ok
		return inner.Send(ctx, message)
	})

	service := NewService(store, 5*time.Second)
	service.HandleMessage(context.Background(), "+573001112233", "hola")

	assert.True(t, <-gotDeadline, "engine call must carry a deadline")
}

type conversationFunc func(ctx context.Context, message string) (string, error)

func (f conversationFunc) Send(ctx context.Context, message string) (string, error) {
	return f(ctx, message)
}
