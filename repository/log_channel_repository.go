package repository

import (
	"context"

	"govern/models"
)

// LogChannelRepository persists the log channel configured for each guild
type LogChannelRepository struct {
	store DocumentStore
}

// NewLogChannelRepository creates a new log channel repository
func NewLogChannelRepository(store DocumentStore) *LogChannelRepository {
	return &LogChannelRepository{store: store}
}

// Load reads the guild to log channel mapping
func (r *LogChannelRepository) Load(ctx context.Context) (models.LogChannelMap, error) {
	channels, err := LoadDocument[models.LogChannelMap](ctx, r.store, LogChannelsDocument)
	if err != nil {
		return models.LogChannelMap{}, err
	}
	if channels == nil {
		channels = models.LogChannelMap{}
	}
	return channels, nil
}

// Save replaces the guild to log channel mapping
func (r *LogChannelRepository) Save(ctx context.Context, channels models.LogChannelMap) error {
	if channels == nil {
		channels = models.LogChannelMap{}
	}
	return SaveDocument(ctx, r.store, LogChannelsDocument, channels)
}
