package conversations

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent/model"
)

// MessagesManager mediates between the graph and the durable conversation
// repository: it persists turns as they happen and rebuilds the model
// context from stored history.
type MessagesManager struct {
	conversationRepo model.ConversationRepository
	maxTurns         int
}

func NewMessagesManager(conversationRepo model.ConversationRepository, config model.ConversationConfig) *MessagesManager {
	return &MessagesManager{
		conversationRepo: conversationRepo,
		maxTurns:         config.MaxTurns,
	}
}

// SaveUserMessage appends the inbound user message to durable history.
func (cm *MessagesManager) SaveUserMessage(ctx context.Context, conversationID string, query string) error {
	return cm.conversationRepo.AddMessage(ctx, conversationID, schema.UserMessage(query))
}

// BuildContext loads stored history and assembles the message list for the
// response model: system prompt first, then the most recent turns up to
// the configured limit. The current user message is already part of the
// stored history by the time this runs.
func (cm *MessagesManager) BuildContext(ctx context.Context, conversationID string, systemPrompt string) ([]*schema.Message, error) {
	history, err := cm.conversationRepo.LoadHistory(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	recent := trimTail(history.Messages, cm.maxTurns)

	messages := make([]*schema.Message, 0, len(recent)+1)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	messages = append(messages, recent...)

	return messages, nil
}

// SaveResponse appends a final assistant reply to durable history.
func (cm *MessagesManager) SaveResponse(ctx context.Context, conversationID string, content string) error {
	assistantMsg := schema.AssistantMessage(content, nil)
	return cm.conversationRepo.AddMessage(ctx, conversationID, assistantMsg)
}

// trimTail returns a copy of the last maxTurns messages. A non-positive
// limit keeps everything.
func trimTail(messages []*schema.Message, maxTurns int) []*schema.Message {
	if maxTurns <= 0 || len(messages) <= maxTurns {
		result := make([]*schema.Message, len(messages))
		copy(result, messages)
		return result
	}
	source := messages[len(messages)-maxTurns:]
	result := make([]*schema.Message, len(source))
	copy(result, source)
	return result
}
