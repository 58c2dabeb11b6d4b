package conversations

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent/model"
)

type memoryRepo struct {
	messages map[string][]*schema.Message
	loadErr  error
	addErr   error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{messages: map[string][]*schema.Message{}}
}

func (r *memoryRepo) AddMessage(ctx context.Context, conversationID string, message *schema.Message) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.messages[conversationID] = append(r.messages[conversationID], message)
	return nil
}

func (r *memoryRepo) LoadHistory(ctx context.Context, conversationID string) (*model.ConversationHistory, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return &model.ConversationHistory{
		ConversationID: conversationID,
		Messages:       r.messages[conversationID],
	}, nil
}

func (r *memoryRepo) ClearHistory(ctx context.Context, conversationID string) error {
	delete(r.messages, conversationID)
	return nil
}

func (r *memoryRepo) GetMessageCount(ctx context.Context, conversationID string) (int, error) {
	return len(r.messages[conversationID]), nil
}

func newManager(repo model.ConversationRepository, maxTurns int) *MessagesManager {
	return NewMessagesManager(repo, model.ConversationConfig{MaxTurns: maxTurns})
}

func TestSaveUserMessageAndResponse(t *testing.T) {
	repo := newMemoryRepo()
	mgr := newManager(repo, 30)
	ctx := context.Background()

	require.NoError(t, mgr.SaveUserMessage(ctx, "+573001112233", "hola"))
	require.NoError(t, mgr.SaveResponse(ctx, "+573001112233", "¡Hola! ¿En qué puedo ayudarte?"))

	stored := repo.messages["+573001112233"]
	require.Len(t, stored, 2)
	assert.Equal(t, schema.User, stored[0].Role)
	assert.Equal(t, "hola", stored[0].Content)
	assert.Equal(t, schema.Assistant, stored[1].Role)
	assert.Equal(t, "¡Hola! ¿En qué puedo ayudarte?", stored[1].Content)
}

func TestBuildContextPrependsSystemPrompt(t *testing.T) {
	repo := newMemoryRepo()
	mgr := newManager(repo, 30)
	ctx := context.Background()

	require.NoError(t, mgr.SaveUserMessage(ctx, "+573001112233", "hola"))
	require.NoError(t, mgr.SaveResponse(ctx, "+573001112233", "buenas"))
	require.NoError(t, mgr.SaveUserMessage(ctx, "+573001112233", "¿tienen miel?"))

	messages, err := mgr.BuildContext(ctx, "+573001112233", "eres Sara")
	require.NoError(t, err)

	require.Len(t, messages, 4)
	assert.Equal(t, schema.System, messages[0].Role)
	assert.Equal(t, "eres Sara", messages[0].Content)
	assert.Equal(t, "¿tienen miel?", messages[3].Content)
}

func TestBuildContextTrimsToMaxTurns(t *testing.T) {
	repo := newMemoryRepo()
	mgr := newManager(repo, 4)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, mgr.SaveUserMessage(ctx, "u1", fmt.Sprintf("mensaje %d", i)))
	}

	messages, err := mgr.BuildContext(ctx, "u1", "sistema")
	require.NoError(t, err)

	require.Len(t, messages, 5)
	assert.Equal(t, schema.System, messages[0].Role)
	assert.Equal(t, "mensaje 6", messages[1].Content)
	assert.Equal(t, "mensaje 9", messages[4].Content)
}

func TestBuildContextEmptyHistory(t *testing.T) {
	mgr := newManager(newMemoryRepo(), 30)

	messages, err := mgr.BuildContext(context.Background(), "nuevo", "sistema")
	require.NoError(t, err)

	require.Len(t, messages, 1)
	assert.Equal(t, schema.System, messages[0].Role)
}

func TestBuildContextPropagatesRepoError(t *testing.T) {
	repo := newMemoryRepo()
	repo.loadErr = errors.New("redis unavailable")
	mgr := newManager(repo, 30)

	_, err := mgr.BuildContext(context.Background(), "u1", "sistema")
	assert.Error(t, err)
}

func TestTrimTail(t *testing.T) {
	msgs := []*schema.Message{
		schema.UserMessage("a"),
		schema.UserMessage("b"),
		schema.UserMessage("c"),
	}

	assert.Len(t, trimTail(msgs, 0), 3)
	assert.Len(t, trimTail(msgs, 5), 3)

	last := trimTail(msgs, 2)
	require.Len(t, last, 2)
	assert.Equal(t, "b", last[0].Content)
	assert.Equal(t, "c", last[1].Content)

	// returned slice is a copy, mutation must not leak back
	last[0] = schema.UserMessage("x")
	assert.Equal(t, "b", msgs[1].Content)
}
