package testutil

import (
	"govern/models"
)

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// Int64Ptr returns a pointer to i
func Int64Ptr(i int64) *int64 {
	return &i
}

// CreateTestGuildRecord creates a guild record with every attribute set
func CreateTestGuildRecord(name string) *models.GuildRecord {
	return &models.GuildRecord{
		ServerName:        StringPtr(name),
		OwnerID:           Int64Ptr(111111111111111111),
		Region:            StringPtr("europe"),
		Boosts:            Int64Ptr(2),
		MemberCount:       Int64Ptr(1500),
		BotCount:          Int64Ptr(12),
		OwnerName:         StringPtr("owner"),
		VerificationLevel: StringPtr("medium"),
	}
}

// CreateTestGuildRecords creates a records document containing the given guilds
func CreateTestGuildRecords(records map[int64]*models.GuildRecord) models.GuildRecords {
	doc := models.GuildRecords{}
	for guildID, record := range records {
		doc[models.GuildKey(guildID)] = record
	}
	return doc
}
