package service

import (
	"context"
	"fmt"
	"strconv"

	"govern/models"

	log "github.com/sirupsen/logrus"
)

// logChannelService implements the LogChannelService interface
type logChannelService struct {
	channels LogChannelRepository
}

// NewLogChannelService creates a new log channel service
func NewLogChannelService(channels LogChannelRepository) LogChannelService {
	return &logChannelService{channels: channels}
}

// SetLogChannel stores the guild's log channel, replacing any previous one
func (s *logChannelService) SetLogChannel(ctx context.Context, guildID int64, channelID int64) error {
	channels, err := s.channels.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load log channels: %w", err)
	}
	if channels == nil {
		channels = models.LogChannelMap{}
	}

	channels[models.GuildKey(guildID)] = strconv.FormatInt(channelID, 10)

	if err := s.channels.Save(ctx, channels); err != nil {
		return fmt.Errorf("failed to save log channels: %w", err)
	}

	log.WithFields(log.Fields{
		"guildID":   guildID,
		"channelID": channelID,
	}).Info("Log channel configured")

	return nil
}

// GetLogChannel returns the guild's configured log channel
func (s *logChannelService) GetLogChannel(ctx context.Context, guildID int64) (string, bool, error) {
	channels, err := s.channels.Load(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to load log channels: %w", err)
	}

	channelID, ok := channels[models.GuildKey(guildID)]
	if !ok || channelID == "" {
		return "", false, nil
	}
	return channelID, true, nil
}
