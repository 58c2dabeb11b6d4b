package chat

import (
	"context"
	"time"

	logx "github.com/liwaisi-tech/ai-micro-businesses-assistant/pkg/logger"
)

// FallbackReply is returned to the end user whenever the engine fails.
// Same wording the assistant has always used on WhatsApp.
const FallbackReply = "Lo siento, se me presentó un error y no puedo responderte ahora."

// Service is the single entry point per inbound message. It owns no state
// of its own; everything lives in the Store.
type Service struct {
	store   *Store
	timeout time.Duration
}

// NewService wraps the store. timeout bounds each engine call; zero
// disables the bound.
func NewService(store *Store, timeout time.Duration) *Service {
	return &Service{store: store, timeout: timeout}
}

// HandleMessage obtains (or creates) the session for userID, marks it
// used, and forwards the message to the engine. Engine failures are
// absorbed: the user gets the fixed fallback reply and the session stays
// in the registry. The userID format is validated at the transport
// boundary before this call; the message may be any string, including
// empty.
func (s *Service) HandleMessage(ctx context.Context, userID, message string) string {
	sess, created, err := s.store.GetOrCreate(userID)
	if err != nil {
		logx.Error().Err(err).Str("user_id", userID).Msg("failed to open conversation")
		return FallbackReply
	}
	sess.Touch()

	if created {
		logx.Info().Str("user_id", userID).Msg("started conversation for new session")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// No registry lock is held while waiting on the engine.
	reply, err := sess.conv.Send(ctx, message)
	if err != nil {
		logx.Error().Err(err).Str("user_id", userID).Msg("engine failed to produce a reply")
		return FallbackReply
	}

	return reply
}
