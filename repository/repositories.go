package repository

// Repositories groups every typed repository over one document store
type Repositories struct {
	BetaUsers    *BetaUserRepository
	GuildRecords *GuildRecordRepository
	Whitelist    *WhitelistRepository
	LogChannels  *LogChannelRepository
}

// NewRepositories creates all repositories backed by store
func NewRepositories(store DocumentStore) *Repositories {
	return &Repositories{
		BetaUsers:    NewBetaUserRepository(store),
		GuildRecords: NewGuildRecordRepository(store),
		Whitelist:    NewWhitelistRepository(store),
		LogChannels:  NewLogChannelRepository(store),
	}
}
