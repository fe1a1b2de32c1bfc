package slack

import (
	"context"
	"errors"
	"net"

	"github.com/slack-go/slack"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/chat"
)

var _ chat.Client = (*Client)(nil)

type Client struct {
	api *slack.Client
}

func NewClient(api *slack.Client) *Client {
	return &Client{api: api}
}

func (c *Client) PostMessage(ctx context.Context, channel, text, username, iconEmoji string) error {
	_, _, err := c.api.PostMessageContext(ctx, channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionUsername(username),
		slack.MsgOptionIconEmoji(iconEmoji),
	)
	return classify("post", err)
}

func (c *Client) DeleteMessage(ctx context.Context, channel, timestamp string) error {
	_, _, err := c.api.DeleteMessageContext(ctx, channel, timestamp)
	return classify("delete", err)
}

func (c *Client) History(ctx context.Context, channel string, limit int) ([]domain.Message, error) {
	resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channel,
		Limit:     limit,
	})
	if err != nil {
		return nil, classify("history", err)
	}

	messages := make([]domain.Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		messages = append(messages, toMessage(m))
	}
	return messages, nil
}

func toMessage(m slack.Message) domain.Message {
	msg := domain.Message{
		UserID:    m.User,
		Username:  m.Username,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
	for _, r := range m.Reactions {
		msg.Reactions = append(msg.Reactions, r.Name)
	}
	return msg
}

// classify marks rate limiting, server errors and network failures as
// transient. Slack API error responses are permanent.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		rateLimited *slack.RateLimitedError
		status      slack.StatusCodeError
		netErr      net.Error
	)
	transient := false
	switch {
	case errors.As(err, &rateLimited):
		transient = true
	case errors.As(err, &status):
		transient = status.Code >= 500
	case errors.As(err, &netErr), errors.Is(err, context.DeadlineExceeded):
		transient = true
	}
	return &domain.ChatError{Op: op, Transient: transient, Err: err}
}
