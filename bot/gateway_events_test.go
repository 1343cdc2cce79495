package bot

import (
	"context"
	"testing"
	"time"

	"govern/events"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildTracker(t *testing.T) {
	tracker := newGuildTracker()
	tracker.seed([]string{"1", "2"})

	assert.False(t, tracker.markJoined("1"), "startup guild is not a join")
	assert.True(t, tracker.markJoined("3"), "unknown guild is a join")
	assert.False(t, tracker.markJoined("3"), "second create for the same guild is not a join")

	tracker.forget("3")
	assert.True(t, tracker.markJoined("3"), "re-added guild is a join again")

	tracker.seed([]string{"4"})
	assert.False(t, tracker.markJoined("3"), "seeding keeps earlier joins")
	assert.False(t, tracker.markJoined("1"))
}

func TestJoinedSince(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, joinedSince(&discordgo.Guild{JoinedAt: startedAt.Add(time.Minute)}, startedAt))
	assert.False(t, joinedSince(&discordgo.Guild{JoinedAt: startedAt.Add(-time.Hour)}, startedAt))
	assert.False(t, joinedSince(&discordgo.Guild{}, startedAt), "missing join time")
}

// newTrackingBot returns a bot with no session and a channel receiving every published join
func newTrackingBot(startedAt time.Time) (*Bot, <-chan events.GuildJoinedEvent) {
	bus := events.NewBus()
	joins := make(chan events.GuildJoinedEvent, 10)
	bus.Subscribe(events.EventTypeGuildJoined, func(ctx context.Context, event events.Event) {
		joins <- event.(events.GuildJoinedEvent)
	})
	return &Bot{eventBus: bus, guilds: newGuildTracker(), startedAt: startedAt}, joins
}

func assertNoJoin(t *testing.T, joins <-chan events.GuildJoinedEvent) {
	t.Helper()
	select {
	case event := <-joins:
		t.Fatalf("unexpected join for guild %d", event.GuildID)
	case <-time.After(50 * time.Millisecond):
	}
}

func guildCreate(id string, joinedAt time.Time) *discordgo.GuildCreate {
	return &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: id, Name: "Guild " + id, JoinedAt: joinedAt}}
}

func TestHandleGuildCreate_StartupGuildBeforeReady(t *testing.T) {
	startedAt := time.Now()
	b, joins := newTrackingBot(startedAt)

	// Lazy GUILD_CREATE delivered ahead of the READY handler
	b.handleGuildCreate(nil, guildCreate("1", startedAt.Add(-24*time.Hour)))
	b.handleReady(nil, &discordgo.Ready{Guilds: []*discordgo.Guild{{ID: "1"}}})
	b.handleGuildCreate(nil, guildCreate("1", startedAt.Add(-24*time.Hour)))

	assertNoJoin(t, joins)
}

func TestHandleGuildCreate_NewGuildPublishesOnce(t *testing.T) {
	startedAt := time.Now()
	b, joins := newTrackingBot(startedAt)

	b.handleReady(nil, &discordgo.Ready{Guilds: []*discordgo.Guild{{ID: "1"}}})
	b.handleGuildCreate(nil, guildCreate("2", startedAt.Add(time.Second)))

	select {
	case event := <-joins:
		assert.Equal(t, events.GuildJoinedEvent{GuildID: 2, GuildName: "Guild 2"}, event)
	case <-time.After(2 * time.Second):
		t.Fatal("join was not published")
	}

	// Re-announced after a reconnect
	b.handleReady(nil, &discordgo.Ready{Guilds: []*discordgo.Guild{{ID: "1"}, {ID: "2"}}})
	b.handleGuildCreate(nil, guildCreate("2", startedAt.Add(time.Second)))
	assertNoJoin(t, joins)
}

func TestHandleGuildCreate_Unavailable(t *testing.T) {
	startedAt := time.Now()
	b, joins := newTrackingBot(startedAt)

	create := guildCreate("3", startedAt.Add(time.Second))
	create.Unavailable = true
	b.handleGuildCreate(nil, create)
	b.handleGuildCreate(nil, &discordgo.GuildCreate{})

	assertNoJoin(t, joins)
}

func TestGuildJoinedEvent(t *testing.T) {
	event, err := guildJoinedEvent(&discordgo.Guild{ID: "123", Name: "Guild"})
	require.NoError(t, err)
	assert.Equal(t, events.GuildJoinedEvent{GuildID: 123, GuildName: "Guild"}, event)

	_, err = guildJoinedEvent(&discordgo.Guild{ID: "x"})
	assert.Error(t, err)
}

func TestChannelEvents(t *testing.T) {
	channel := &discordgo.Channel{ID: "9", GuildID: "1", Name: "general"}

	created, ok := channelCreatedEvent(channel)
	require.True(t, ok)
	assert.Equal(t, events.ChannelCreatedEvent{GuildID: 1, ChannelID: 9, ChannelName: "general"}, created)

	deleted, ok := channelDeletedEvent(channel)
	require.True(t, ok)
	assert.Equal(t, events.ChannelDeletedEvent{GuildID: 1, ChannelID: 9, ChannelName: "general"}, deleted)

	_, ok = channelCreatedEvent(&discordgo.Channel{ID: "9", Name: "dm"})
	assert.False(t, ok, "DM channels are ignored")
	_, ok = channelDeletedEvent(nil)
	assert.False(t, ok)
}

func TestChannelRenamedEvent(t *testing.T) {
	before := &discordgo.Channel{ID: "9", GuildID: "1", Name: "old"}

	t.Run("name changed", func(t *testing.T) {
		after := &discordgo.Channel{ID: "9", GuildID: "1", Name: "new"}
		event, ok := channelRenamedEvent(before, after)
		require.True(t, ok)
		assert.Equal(t, events.ChannelRenamedEvent{GuildID: 1, ChannelID: 9, OldName: "old", NewName: "new"}, event)
	})

	t.Run("other attribute changed", func(t *testing.T) {
		after := &discordgo.Channel{ID: "9", GuildID: "1", Name: "old", Topic: "new topic"}
		_, ok := channelRenamedEvent(before, after)
		assert.False(t, ok)
	})

	t.Run("previous version unknown", func(t *testing.T) {
		after := &discordgo.Channel{ID: "9", GuildID: "1", Name: "new"}
		_, ok := channelRenamedEvent(nil, after)
		assert.False(t, ok)
	})
}

func TestCommandDefinitions(t *testing.T) {
	commands := commandDefinitions()

	byName := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range commands {
		byName[cmd.Name] = cmd
	}
	require.Len(t, byName, 5)
	assert.Contains(t, byName, "beta_admit")
	assert.Contains(t, byName, "guild_upsert")
	assert.Contains(t, byName, "guild_show")
	assert.Contains(t, byName, "guild_whitelist")

	upsert := byName["guild_upsert"]
	require.Len(t, upsert.Options, 9)
	assert.Equal(t, "guild_id", upsert.Options[0].Name)
	assert.True(t, upsert.Options[0].Required)
	for _, opt := range upsert.Options[1:] {
		assert.False(t, opt.Required, opt.Name)
	}

	logSetup := byName["log_setup"]
	require.NotNil(t, logSetup)
	require.NotNil(t, logSetup.DefaultMemberPermissions)
	assert.Equal(t, int64(discordgo.PermissionManageGuild), *logSetup.DefaultMemberPermissions)
	require.NotNil(t, logSetup.Contexts)
	assert.Equal(t, []discordgo.InteractionContextType{discordgo.InteractionContextGuild}, *logSetup.Contexts)
}
