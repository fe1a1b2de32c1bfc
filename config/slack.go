package config

import (
	"errors"

	"github.com/slack-go/slack"

	"github.com/nandanugg/apartment-notifier/module/core/service"
)

func NewSlack(cfg *Config) (*slack.Client, error) {
	if cfg.SlackToken == "" {
		return nil, errors.New("slack: SLACK_TOKEN is required")
	}
	return slack.New(cfg.SlackToken), nil
}

func ChatSettings(cfg *Config) service.ChatSettings {
	return service.ChatSettings{
		PostChannel:      cfg.SlackChannel,
		DeleteChannelID:  cfg.ChannelID,
		BotUsername:      cfg.BotUsername,
		OwnerUserID:      cfg.OwnerUserID,
		SystemUserID:     cfg.SlackbotUserID,
		ClearText:        cfg.ClearText,
		HelpCenterPrefix: cfg.HelpCenterPrefix,
		HistoryLimit:     cfg.HistoryLimit,
		RetryDelay:       cfg.DeleteRetryDelay,
	}
}
