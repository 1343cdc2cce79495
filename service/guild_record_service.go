package service

import (
	"context"
	"fmt"
	"strings"

	"govern/models"

	log "github.com/sirupsen/logrus"
)

// guildRecordService implements the GuildRecordService interface
type guildRecordService struct {
	gate    Authorizer
	records GuildRecordRepository
}

// NewGuildRecordService creates a new guild record service
func NewGuildRecordService(gate Authorizer, records GuildRecordRepository) GuildRecordService {
	return &guildRecordService{
		gate:    gate,
		records: records,
	}
}

// UpsertGuildRecord merges the patch into the guild's record. Beta testers only.
func (s *guildRecordService) UpsertGuildRecord(ctx context.Context, actorID int64, upsert GuildRecordUpsert) (int64, *models.GuildRecord, bool, error) {
	if err := s.gate.Require(ctx, actorID, GateBetaTester); err != nil {
		return 0, nil, false, err
	}

	guildID, err := ParseID(upsert.GuildID)
	if err != nil {
		return 0, nil, false, err
	}

	patch := upsert.Patch
	if upsert.OwnerID != nil {
		ownerID, err := ParseID(*upsert.OwnerID)
		if err != nil {
			return 0, nil, false, err
		}
		patch.OwnerID = &ownerID
	}

	records, err := s.records.Load(ctx)
	if err != nil {
		return 0, nil, false, fmt.Errorf("failed to load guild records: %w", err)
	}
	if records == nil {
		records = models.GuildRecords{}
	}

	key := models.GuildKey(guildID)
	record, exists := records[key]
	if !exists {
		record = &models.GuildRecord{}
		records[key] = record
	}
	record.Apply(patch)

	if err := s.records.Save(ctx, records); err != nil {
		return 0, nil, false, fmt.Errorf("failed to save guild records: %w", err)
	}

	log.WithFields(log.Fields{
		"actorID": actorID,
		"guildID": guildID,
		"created": !exists,
	}).Info("Upserted guild record")

	result := *record
	return guildID, &result, !exists, nil
}

// GetGuildRecord looks up a guild record. Anyone may read records.
func (s *guildRecordService) GetGuildRecord(ctx context.Context, rawGuildID string) (string, *models.GuildRecord, error) {
	key := strings.TrimSpace(rawGuildID)

	records, err := s.records.Load(ctx)
	if err != nil {
		return key, nil, fmt.Errorf("failed to load guild records: %w", err)
	}

	record, ok := records[key]
	if !ok {
		return key, nil, fmt.Errorf("guild %s: %w", key, ErrNotFound)
	}

	return key, record, nil
}
