package models

// LogChannelMap maps a stringified guild ID to the ID of its log channel
type LogChannelMap map[string]string
