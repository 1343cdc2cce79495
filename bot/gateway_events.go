package bot

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"govern/events"

	"github.com/bwmarrin/discordgo"
)

// guildTracker remembers which guilds the bot already belongs to
type guildTracker struct {
	mu    sync.Mutex
	known map[string]struct{}
}

func newGuildTracker() *guildTracker {
	return &guildTracker{known: make(map[string]struct{})}
}

// seed adds guilds the bot already belongs to. Known entries are kept, so a
// reconnect READY cannot undo a join recorded earlier.
func (t *guildTracker) seed(ids []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range ids {
		t.known[id] = struct{}{}
	}
}

// markJoined records the guild and reports whether it was new
func (t *guildTracker) markJoined(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.known[id]; ok {
		return false
	}
	t.known[id] = struct{}{}
	return true
}

func (t *guildTracker) forget(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.known, id)
}

// joinedSince reports whether the bot's membership in g started after t.
// A missing join time is treated as old membership.
func joinedSince(g *discordgo.Guild, t time.Time) bool {
	return !g.JoinedAt.IsZero() && g.JoinedAt.After(t)
}

func guildJoinedEvent(g *discordgo.Guild) (events.GuildJoinedEvent, error) {
	guildID, err := strconv.ParseInt(g.ID, 10, 64)
	if err != nil {
		return events.GuildJoinedEvent{}, fmt.Errorf("invalid guild ID %q: %w", g.ID, err)
	}
	return events.GuildJoinedEvent{GuildID: guildID, GuildName: g.Name}, nil
}

// channelIDs parses the IDs of a guild channel; DM channels have no guild and are skipped
func channelIDs(c *discordgo.Channel) (guildID, channelID int64, ok bool) {
	if c == nil || c.GuildID == "" {
		return 0, 0, false
	}
	guildID, err := strconv.ParseInt(c.GuildID, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	channelID, err = strconv.ParseInt(c.ID, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return guildID, channelID, true
}

func channelCreatedEvent(c *discordgo.Channel) (events.ChannelCreatedEvent, bool) {
	guildID, channelID, ok := channelIDs(c)
	if !ok {
		return events.ChannelCreatedEvent{}, false
	}
	return events.ChannelCreatedEvent{GuildID: guildID, ChannelID: channelID, ChannelName: c.Name}, true
}

func channelDeletedEvent(c *discordgo.Channel) (events.ChannelDeletedEvent, bool) {
	guildID, channelID, ok := channelIDs(c)
	if !ok {
		return events.ChannelDeletedEvent{}, false
	}
	return events.ChannelDeletedEvent{GuildID: guildID, ChannelID: channelID, ChannelName: c.Name}, true
}

// channelRenamedEvent only fires when the name changed. Without a cached previous
// version the change cannot be described, so nothing is published.
func channelRenamedEvent(before, after *discordgo.Channel) (events.ChannelRenamedEvent, bool) {
	if before == nil || after == nil || before.Name == after.Name {
		return events.ChannelRenamedEvent{}, false
	}
	guildID, channelID, ok := channelIDs(after)
	if !ok {
		return events.ChannelRenamedEvent{}, false
	}
	return events.ChannelRenamedEvent{
		GuildID:   guildID,
		ChannelID: channelID,
		OldName:   before.Name,
		NewName:   after.Name,
	}, true
}
