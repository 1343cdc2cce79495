package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// WhitelistedGuildList is the set of guild IDs allowed to keep the bot.
// It is persisted as a bare JSON array.
type WhitelistedGuildList []int64

// Contains reports whether the guild is whitelisted
func (l WhitelistedGuildList) Contains(guildID int64) bool {
	return slices.Contains(l, guildID)
}

// UnmarshalJSON accepts numbers as well as numeric strings written by older tooling.
// Entries that are not guild IDs are skipped so one bad entry never drops the list.
func (l *WhitelistedGuildList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ids := make(WhitelistedGuildList, 0, len(raw))
	for _, item := range raw {
		id, err := parseGuildEntry(item)
		if err != nil {
			log.WithFields(log.Fields{
				"entry": string(item),
				"error": err,
			}).Warn("Skipping whitelist entry that is not a guild ID")
			continue
		}
		ids = append(ids, id)
	}

	*l = ids
	return nil
}

func parseGuildEntry(item json.RawMessage) (int64, error) {
	// null decodes into an int64 without error
	if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
		return 0, errors.New("null entry")
	}

	var id int64
	if err := json.Unmarshal(item, &id); err == nil {
		return id, nil
	}

	var s string
	if err := json.Unmarshal(item, &s); err != nil {
		return 0, errors.New("not a number or string")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not numeric: %w", s, err)
	}
	return id, nil
}
