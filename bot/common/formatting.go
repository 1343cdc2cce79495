package common

import (
	"fmt"
	"strconv"
	"time"
)

// FormatString renders an optional string, substituting N/A when absent
func FormatString(value *string) string {
	if value == nil || *value == "" {
		return NotAvailable
	}
	return *value
}

// FormatInt renders an optional integer, substituting N/A when absent
func FormatInt(value *int64) string {
	if value == nil {
		return NotAvailable
	}
	return strconv.FormatInt(*value, 10)
}

// FormatChannelMention formats a channel mention
func FormatChannelMention(channelID string) string {
	return fmt.Sprintf("<#%s>", channelID)
}

// FormatTimestamp formats a time as an embed timestamp
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
