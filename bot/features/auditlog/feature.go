package auditlog

import (
	"time"

	"govern/bot/common"
	"govern/events"
	"govern/service"

	"github.com/bwmarrin/discordgo"
)

// ChannelPoster is the part of *discordgo.Session used to deliver audit entries
type ChannelPoster interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Feature struct {
	logChannelService service.LogChannelService
	poster            ChannelPoster
	now               func() time.Time
}

func New(logChannelService service.LogChannelService, poster ChannelPoster) *Feature {
	return &Feature{
		logChannelService: logChannelService,
		poster:            poster,
		now:               time.Now,
	}
}

// HandleCommand handles /log_setup
func (f *Feature) HandleCommand(s common.Responder, i *discordgo.InteractionCreate) {
	f.handleSetup(s, i)
}

// Subscribe registers the audit logger for channel events
func (f *Feature) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeChannelCreated, f.handleChannelEvent)
	bus.Subscribe(events.EventTypeChannelDeleted, f.handleChannelEvent)
	bus.Subscribe(events.EventTypeChannelRenamed, f.handleChannelEvent)
}
