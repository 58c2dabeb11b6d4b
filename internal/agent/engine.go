// Package agent implements the conversational engine behind the chat
// core: an Eino graph over a Gemini chat model with the business tools,
// with durable per-user history in Redis.
package agent

import (
	"context"
	"fmt"

	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent/graph"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/agent/model"
	"github.com/liwaisi-tech/ai-micro-businesses-assistant/internal/chat"
)

// Engine adapts the compiled response graph to the chat.Engine contract.
// Conversations are keyed by the user's WhatsApp number; because history
// lives in Redis under that key, reopening a user id after session
// eviction transparently restores prior context (until the history TTL
// expires).
type Engine struct {
	runner graph.Runner
}

// NewEngine builds the graph once and reuses it for every conversation.
func NewEngine(ctx context.Context, cfg graph.Config) (*Engine, error) {
	runner, err := graph.BuildResponseGraph(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build response graph: %w", err)
	}
	return &Engine{runner: runner}, nil
}

// Open returns the conversation handle for userID.
func (e *Engine) Open(userID string) (chat.Conversation, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is empty")
	}
	return &conversation{runner: e.runner, conversationID: userID}, nil
}

type conversation struct {
	runner         graph.Runner
	conversationID string
}

func (c *conversation) Send(ctx context.Context, message string) (string, error) {
	return c.runner.Invoke(ctx, model.QueryInput{
		ConversationID: c.conversationID,
		Query:          message,
	})
}

var _ chat.Engine = (*Engine)(nil)
