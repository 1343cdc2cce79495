package auditlog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"govern/bot/testutil"
	"govern/events"
	"govern/service"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sentEmbed struct {
	channelID string
	embed     *discordgo.MessageEmbed
}

type fakePoster struct {
	mu       sync.Mutex
	channels map[string]*discordgo.Channel
	sendErr  error
	sent     []sentEmbed
}

func (p *fakePoster) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	channel, ok := p.channels[channelID]
	if !ok {
		return nil, errors.New("unknown channel")
	}
	return channel, nil
}

func (p *fakePoster) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sendErr != nil {
		return nil, p.sendErr
	}
	p.sent = append(p.sent, sentEmbed{channelID: channelID, embed: embed})
	return &discordgo.Message{}, nil
}

var fixedTime = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func newTestFeature(logChannels service.LogChannelService, poster ChannelPoster) *Feature {
	f := New(logChannels, poster)
	f.now = func() time.Time { return fixedTime }
	return f
}

func TestHandleChannelEvent_Created(t *testing.T) {
	logChannels := new(service.MockLogChannelService)
	logChannels.On("GetLogChannel", mock.Anything, int64(1)).Return("55", true, nil)
	poster := &fakePoster{channels: map[string]*discordgo.Channel{"55": {ID: "55", GuildID: "1"}}}

	f := newTestFeature(logChannels, poster)
	f.handleChannelEvent(context.Background(), events.ChannelCreatedEvent{GuildID: 1, ChannelID: 9, ChannelName: "general"})

	require.Len(t, poster.sent, 1)
	sent := poster.sent[0]
	assert.Equal(t, "55", sent.channelID)
	assert.Equal(t, "Channel Created", sent.embed.Title)
	assert.Equal(t, 0xc9a0ec, sent.embed.Color)
	assert.Equal(t, "2024-03-01T10:30:00Z", sent.embed.Timestamp)
	require.Len(t, sent.embed.Fields, 2)
	assert.Equal(t, "general", sent.embed.Fields[0].Value)
	assert.Equal(t, "9", sent.embed.Fields[1].Value)
}

func TestHandleChannelEvent_DeletedAndRenamed(t *testing.T) {
	logChannels := new(service.MockLogChannelService)
	logChannels.On("GetLogChannel", mock.Anything, int64(1)).Return("55", true, nil)
	poster := &fakePoster{channels: map[string]*discordgo.Channel{"55": {ID: "55", GuildID: "1"}}}

	f := newTestFeature(logChannels, poster)
	f.handleChannelEvent(context.Background(), events.ChannelDeletedEvent{GuildID: 1, ChannelID: 9, ChannelName: "old"})
	f.handleChannelEvent(context.Background(), events.ChannelRenamedEvent{GuildID: 1, ChannelID: 9, OldName: "a", NewName: "b"})

	require.Len(t, poster.sent, 2)
	assert.Equal(t, "Channel Deleted", poster.sent[0].embed.Title)
	assert.Equal(t, "Channel Updated", poster.sent[1].embed.Title)
	assert.Equal(t, "Name Changed", poster.sent[1].embed.Fields[0].Name)
	assert.Equal(t, "Before: a\nAfter: b", poster.sent[1].embed.Fields[0].Value)
}

func TestHandleChannelEvent_Silent(t *testing.T) {
	event := events.ChannelCreatedEvent{GuildID: 1, ChannelID: 9, ChannelName: "general"}

	t.Run("no log channel configured", func(t *testing.T) {
		logChannels := new(service.MockLogChannelService)
		logChannels.On("GetLogChannel", mock.Anything, int64(1)).Return("", false, nil)
		poster := &fakePoster{}

		newTestFeature(logChannels, poster).handleChannelEvent(context.Background(), event)
		assert.Empty(t, poster.sent)
	})

	t.Run("store failure", func(t *testing.T) {
		logChannels := new(service.MockLogChannelService)
		logChannels.On("GetLogChannel", mock.Anything, int64(1)).Return("", false, errors.New("io"))
		poster := &fakePoster{}

		newTestFeature(logChannels, poster).handleChannelEvent(context.Background(), event)
		assert.Empty(t, poster.sent)
	})

	t.Run("channel does not resolve", func(t *testing.T) {
		logChannels := new(service.MockLogChannelService)
		logChannels.On("GetLogChannel", mock.Anything, int64(1)).Return("55", true, nil)
		poster := &fakePoster{channels: map[string]*discordgo.Channel{}}

		newTestFeature(logChannels, poster).handleChannelEvent(context.Background(), event)
		assert.Empty(t, poster.sent)
	})

	t.Run("channel in another guild", func(t *testing.T) {
		logChannels := new(service.MockLogChannelService)
		logChannels.On("GetLogChannel", mock.Anything, int64(1)).Return("55", true, nil)
		poster := &fakePoster{channels: map[string]*discordgo.Channel{"55": {ID: "55", GuildID: "2"}}}

		newTestFeature(logChannels, poster).handleChannelEvent(context.Background(), event)
		assert.Empty(t, poster.sent)
	})

	t.Run("send failure", func(t *testing.T) {
		logChannels := new(service.MockLogChannelService)
		logChannels.On("GetLogChannel", mock.Anything, int64(1)).Return("55", true, nil)
		poster := &fakePoster{
			channels: map[string]*discordgo.Channel{"55": {ID: "55", GuildID: "1"}},
			sendErr:  errors.New("missing access"),
		}

		assert.NotPanics(t, func() {
			newTestFeature(logChannels, poster).handleChannelEvent(context.Background(), event)
		})
	})
}

func TestSubscribe_DeliversThroughBus(t *testing.T) {
	logChannels := new(service.MockLogChannelService)
	logChannels.On("GetLogChannel", mock.Anything, int64(1)).Return("55", true, nil)
	poster := &fakePoster{channels: map[string]*discordgo.Channel{"55": {ID: "55", GuildID: "1"}}}

	bus := events.NewBus()
	newTestFeature(logChannels, poster).Subscribe(bus)
	bus.Emit(context.Background(), events.ChannelRenamedEvent{GuildID: 1, ChannelID: 9, OldName: "a", NewName: "b"})

	assert.Eventually(t, func() bool {
		poster.mu.Lock()
		defer poster.mu.Unlock()
		return len(poster.sent) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestHandleSetup(t *testing.T) {
	t.Run("stores invoking channel", func(t *testing.T) {
		logChannels := new(service.MockLogChannelService)
		logChannels.On("SetLogChannel", mock.Anything, int64(500), int64(600)).Return(nil)

		responder := &testutil.FakeResponder{}
		New(logChannels, &fakePoster{}).HandleCommand(responder, testutil.CommandInteraction("log_setup", "1", "500", "600"))

		resp := responder.LastResponse()
		require.NotNil(t, resp)
		assert.Equal(t, "Log channel for this server has been set to <#600>.", resp.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
		logChannels.AssertExpectations(t)
	})

	t.Run("outside a guild", func(t *testing.T) {
		logChannels := new(service.MockLogChannelService)

		responder := &testutil.FakeResponder{}
		New(logChannels, &fakePoster{}).HandleCommand(responder, testutil.CommandInteraction("log_setup", "1", "", "600"))

		assert.Contains(t, responder.LastResponse().Data.Content, "only be used in a server")
		logChannels.AssertNotCalled(t, "SetLogChannel", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSessionPoster_UsesCachedChannel(t *testing.T) {
	dg, err := discordgo.New("Bot test")
	require.NoError(t, err)
	require.NoError(t, dg.State.GuildAdd(&discordgo.Guild{ID: "1"}))
	require.NoError(t, dg.State.ChannelAdd(&discordgo.Channel{ID: "55", GuildID: "1", Name: "audit"}))

	// Served from the cache; the session has no connection to fall back on
	channel, err := NewSessionPoster(dg).Channel("55")
	require.NoError(t, err)
	assert.Equal(t, "1", channel.GuildID)
	assert.Equal(t, "audit", channel.Name)
}
