package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/chat"
)

const (
	robotFaceIcon       = ":robot_face:"
	defaultRetryDelay   = 5 * time.Second
	defaultHistoryLimit = 100
)

type ChatSettings struct {
	PostChannel      string
	DeleteChannelID  string
	BotUsername      string
	OwnerUserID      string
	SystemUserID     string
	ClearText        string
	HelpCenterPrefix string
	HistoryLimit     int
	RetryDelay       time.Duration
}

type NotificationService struct {
	client   chat.Client
	settings ChatSettings
	logger   zerolog.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewNotificationService(client chat.Client, settings ChatSettings, logger zerolog.Logger) *NotificationService {
	if settings.RetryDelay <= 0 {
		settings.RetryDelay = defaultRetryDelay
	}
	if settings.HistoryLimit <= 0 {
		settings.HistoryLimit = defaultHistoryLimit
	}
	return &NotificationService{
		client:   client,
		settings: settings,
		logger:   logger,
		sleep:    sleepContext,
	}
}

func FormatListing(l *domain.Listing) string {
	return fmt.Sprintf("APARTMENT: %s | %s | %s | %s | <%s>", l.Area, l.Price, l.BartDist, l.Name, l.URL)
}

func (s *NotificationService) PostListing(ctx context.Context, l *domain.Listing) error {
	return s.client.PostMessage(ctx, s.settings.PostChannel, FormatListing(l), s.settings.BotUsername, robotFaceIcon)
}

// ClearRequested reports whether the owner posted the clear command.
func (s *NotificationService) ClearRequested(messages []domain.Message) bool {
	for _, m := range messages {
		if m.HasUser(s.settings.OwnerUserID) && m.Text == s.settings.ClearText {
			return true
		}
	}
	return false
}

// Clear deletes unreacted bot posts, the system user's help-center replies
// and the owner's clear command. It stops at the first deletion that fails.
func (s *NotificationService) Clear(ctx context.Context, messages []domain.Message) (int, error) {
	s.logger.Info().Msg("Clearing unmarked apartments, your clear message, and Slackbot's notification...")

	deleted := 0
	for _, m := range messages {
		if !s.clearable(m) {
			continue
		}
		if err := s.deleteWithRetry(ctx, m.Timestamp); err != nil {
			return deleted, fmt.Errorf("delete message %s: %w", m.Timestamp, err)
		}
		deleted++
	}
	return deleted, nil
}

// CheckAndClear reads recent channel history and clears it when the owner
// asked for it.
func (s *NotificationService) CheckAndClear(ctx context.Context) (*domain.ClearResult, error) {
	messages, err := s.client.History(ctx, s.settings.DeleteChannelID, s.settings.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("channel history: %w", err)
	}

	result := &domain.ClearResult{Requested: s.ClearRequested(messages)}
	if !result.Requested {
		return result, nil
	}

	result.Deleted, err = s.Clear(ctx, messages)
	if err != nil {
		return result, err
	}
	s.logger.Info().Int("deleted", result.Deleted).Msg("channel cleared")
	return result, nil
}

func (s *NotificationService) clearable(m domain.Message) bool {
	switch {
	case m.HasUsername(s.settings.BotUsername):
		return !m.HasReactions()
	case m.HasUser(s.settings.SystemUserID):
		return strings.HasPrefix(m.Text, s.settings.HelpCenterPrefix)
	case m.HasUser(s.settings.OwnerUserID):
		return m.Text == s.settings.ClearText
	}
	return false
}

func (s *NotificationService) deleteWithRetry(ctx context.Context, ts string) error {
	err := s.client.DeleteMessage(ctx, s.settings.DeleteChannelID, ts)
	if err == nil || !domain.IsTransientChatError(err) {
		return err
	}

	s.logger.Warn().Err(err).Str("ts", ts).Dur("delay", s.settings.RetryDelay).Msg("delete failed, retrying")
	if err := s.sleep(ctx, s.settings.RetryDelay); err != nil {
		return err
	}
	return s.client.DeleteMessage(ctx, s.settings.DeleteChannelID, ts)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
