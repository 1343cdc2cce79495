package repository

import (
	"context"

	"govern/models"
)

// GuildRecordRepository persists guild records keyed by stringified guild ID
type GuildRecordRepository struct {
	store DocumentStore
}

// NewGuildRecordRepository creates a new guild record repository
func NewGuildRecordRepository(store DocumentStore) *GuildRecordRepository {
	return &GuildRecordRepository{store: store}
}

// Load reads all guild records
func (r *GuildRecordRepository) Load(ctx context.Context) (models.GuildRecords, error) {
	records, err := LoadDocument[models.GuildRecords](ctx, r.store, GuildRecordsDocument)
	if err != nil {
		return models.GuildRecords{}, err
	}
	if records == nil {
		records = models.GuildRecords{}
	}
	// A JSON null value decodes to a nil record
	for key, record := range records {
		if record == nil {
			records[key] = &models.GuildRecord{}
		}
	}
	return records, nil
}

// Save replaces all guild records
func (r *GuildRecordRepository) Save(ctx context.Context, records models.GuildRecords) error {
	if records == nil {
		records = models.GuildRecords{}
	}
	return SaveDocument(ctx, r.store, GuildRecordsDocument, records)
}
