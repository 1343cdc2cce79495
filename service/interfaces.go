package service

import (
	"context"

	"govern/models"
)

// BetaUserRepository defines the interface for beta tester list access
type BetaUserRepository interface {
	// Load returns the current beta user list, empty when nothing is stored
	Load(ctx context.Context) (models.BetaUserList, error)

	// Save replaces the beta user list
	Save(ctx context.Context, list models.BetaUserList) error
}

// GuildRecordRepository defines the interface for guild record access
type GuildRecordRepository interface {
	// Load returns all guild records keyed by stringified guild ID
	Load(ctx context.Context) (models.GuildRecords, error)

	// Save replaces all guild records
	Save(ctx context.Context, records models.GuildRecords) error
}

// WhitelistRepository defines the interface for whitelisted guild access
type WhitelistRepository interface {
	// Load returns the whitelisted guild IDs, empty when nothing is stored
	Load(ctx context.Context) (models.WhitelistedGuildList, error)

	// Save replaces the whitelisted guild IDs
	Save(ctx context.Context, list models.WhitelistedGuildList) error
}

// LogChannelRepository defines the interface for log channel configuration access
type LogChannelRepository interface {
	// Load returns the guild to log channel mapping
	Load(ctx context.Context) (models.LogChannelMap, error)

	// Save replaces the guild to log channel mapping
	Save(ctx context.Context, channels models.LogChannelMap) error
}

// Authorizer decides whether a subject passes a gate
type Authorizer interface {
	// Authorize reports whether subjectID passes the gate. Storage failures fail closed.
	Authorize(ctx context.Context, subjectID int64, kind GateKind) bool

	// Require returns ErrPermissionDenied when subjectID does not pass the gate
	Require(ctx context.Context, subjectID int64, kind GateKind) error
}

// BetaService defines the interface for beta tester management
type BetaService interface {
	// AdmitBetaTester adds rawUserID to the beta list on behalf of an owner.
	// added is false when the user was already present.
	AdmitBetaTester(ctx context.Context, actorID int64, rawUserID string) (userID int64, added bool, err error)
}

// GuildRecordUpsert is a guild_upsert request. IDs are kept as typed by the user.
type GuildRecordUpsert struct {
	GuildID string
	OwnerID *string // nil when not supplied
	Patch   models.GuildRecordPatch
}

// GuildRecordService defines the interface for guild record operations
type GuildRecordService interface {
	// UpsertGuildRecord merges the supplied attributes into the guild's record,
	// creating it when absent. The actor is checked before any input is parsed.
	UpsertGuildRecord(ctx context.Context, actorID int64, upsert GuildRecordUpsert) (guildID int64, record *models.GuildRecord, created bool, err error)

	// GetGuildRecord looks up a record by the guild ID as typed by the user.
	// Returns ErrNotFound when no record exists.
	GetGuildRecord(ctx context.Context, rawGuildID string) (key string, record *models.GuildRecord, err error)
}

// WhitelistService defines the interface for guild whitelist management
type WhitelistService interface {
	// WhitelistGuild adds rawGuildID to the whitelist on behalf of an owner.
	// added is false when the guild was already whitelisted.
	WhitelistGuild(ctx context.Context, actorID int64, rawGuildID string) (guildID int64, added bool, err error)
}

// MembershipService defines the guild membership policy
type MembershipService interface {
	// ShouldRemain reports whether the bot may stay in the guild
	ShouldRemain(ctx context.Context, guildID int64) bool
}

// LogChannelService defines the interface for audit log channel configuration
type LogChannelService interface {
	// SetLogChannel stores channelID as the guild's log channel
	SetLogChannel(ctx context.Context, guildID int64, channelID int64) error

	// GetLogChannel returns the guild's log channel ID, if one is configured
	GetLogChannel(ctx context.Context, guildID int64) (channelID string, ok bool, err error)
}
