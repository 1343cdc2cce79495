package membership

import (
	"context"
	"strconv"

	"govern/events"
	"govern/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// GuildLeaver is the part of *discordgo.Session used to leave a guild
type GuildLeaver interface {
	GuildLeave(guildID string, options ...discordgo.RequestOption) error
}

// Feature enforces the whitelist on guild joins
type Feature struct {
	membershipService service.MembershipService
	leaver            GuildLeaver
}

func New(membershipService service.MembershipService, leaver GuildLeaver) *Feature {
	return &Feature{
		membershipService: membershipService,
		leaver:            leaver,
	}
}

// Subscribe registers the policy for guild join events
func (f *Feature) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeGuildJoined, f.handleGuildJoined)
}

// handleGuildJoined leaves any guild that is not whitelisted
func (f *Feature) handleGuildJoined(ctx context.Context, event events.Event) {
	e, ok := event.(events.GuildJoinedEvent)
	if !ok {
		return
	}

	logger := log.WithFields(log.Fields{
		"guildID":   e.GuildID,
		"guildName": e.GuildName,
	})

	if f.membershipService.ShouldRemain(ctx, e.GuildID) {
		logger.Info("Joined whitelisted guild")
		return
	}

	logger.Info("Leaving guild that is not whitelisted")
	if err := f.leaver.GuildLeave(strconv.FormatInt(e.GuildID, 10)); err != nil {
		logger.WithError(err).Error("Failed to leave guild")
	}
}
