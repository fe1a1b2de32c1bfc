package chat

import (
	"context"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

// Client is the subset of the chat service used by the notifier. Errors are
// returned as *domain.ChatError.
type Client interface {
	PostMessage(ctx context.Context, channel, text, username, iconEmoji string) error
	DeleteMessage(ctx context.Context, channel, timestamp string) error
	History(ctx context.Context, channel string, limit int) ([]domain.Message, error)
}
