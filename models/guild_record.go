package models

import (
	"strconv"
)

// GuildRecord holds the metadata tracked for a guild. Every attribute is optional;
// nil means the value has never been supplied.
type GuildRecord struct {
	ServerName        *string `json:"server_name,omitempty"`
	OwnerID           *int64  `json:"owner_id,omitempty"`
	Region            *string `json:"region,omitempty"`
	Boosts            *int64  `json:"boosts,omitempty"`
	MemberCount       *int64  `json:"member_count,omitempty"`
	BotCount          *int64  `json:"bot_count,omitempty"`
	OwnerName         *string `json:"owner_name,omitempty"`
	VerificationLevel *string `json:"verification_level,omitempty"`
}

// GuildRecords maps a stringified guild ID to its record
type GuildRecords map[string]*GuildRecord

// GuildRecordPatch carries the attributes supplied to an upsert. Nil fields are left untouched.
type GuildRecordPatch GuildRecord

// Apply merges the supplied attributes of the patch into the record
func (r *GuildRecord) Apply(patch GuildRecordPatch) {
	if patch.ServerName != nil {
		r.ServerName = patch.ServerName
	}
	if patch.OwnerID != nil {
		r.OwnerID = patch.OwnerID
	}
	if patch.Region != nil {
		r.Region = patch.Region
	}
	if patch.Boosts != nil {
		r.Boosts = patch.Boosts
	}
	if patch.MemberCount != nil {
		r.MemberCount = patch.MemberCount
	}
	if patch.BotCount != nil {
		r.BotCount = patch.BotCount
	}
	if patch.OwnerName != nil {
		r.OwnerName = patch.OwnerName
	}
	if patch.VerificationLevel != nil {
		r.VerificationLevel = patch.VerificationLevel
	}
}

// GuildKey returns the document key used for a guild ID
func GuildKey(guildID int64) string {
	return strconv.FormatInt(guildID, 10)
}
