package repository

// Document names. With the file backend these are the file names under the data
// directory, without the .json extension.
const (
	BetaUsersDocument    = "beta"
	GuildRecordsDocument = "server_data"
	WhitelistDocument    = "purchased"
	LogChannelsDocument  = "logs"
)
