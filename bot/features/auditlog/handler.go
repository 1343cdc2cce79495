package auditlog

import (
	"context"
	"fmt"
	"strconv"

	"govern/bot/common"
	"govern/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleSetup handles the /log_setup command
func (f *Feature) handleSetup(s common.Responder, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if i.GuildID == "" {
		common.RespondWithError(s, i, "This command can only be used in a server.")
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		common.RespondWithBotError(s, i, common.NewSystemError(err, "/log_setup: invalid guild ID"))
		return
	}
	channelID, err := strconv.ParseInt(i.ChannelID, 10, 64)
	if err != nil {
		common.RespondWithBotError(s, i, common.NewSystemError(err, "/log_setup: invalid channel ID"))
		return
	}

	if err := f.logChannelService.SetLogChannel(ctx, guildID, channelID); err != nil {
		common.RespondWithBotError(s, i, common.NewSystemError(err, "/log_setup failed"))
		return
	}

	message := fmt.Sprintf("Log channel for this server has been set to %s.", common.FormatChannelMention(i.ChannelID))
	if err := common.RespondWithMessage(s, i, message, true); err != nil {
		log.Errorf("Error responding to log_setup: %v", err)
	}
}

// handleChannelEvent posts an audit entry to the guild's log channel. Delivery is
// best effort: every failure is logged at debug level and dropped.
func (f *Feature) handleChannelEvent(ctx context.Context, event events.Event) {
	var (
		guildID int64
		embed   *discordgo.MessageEmbed
	)

	switch e := event.(type) {
	case events.ChannelCreatedEvent:
		guildID = e.GuildID
		embed = buildChannelCreatedEmbed(e, f.now())
	case events.ChannelDeletedEvent:
		guildID = e.GuildID
		embed = buildChannelDeletedEmbed(e, f.now())
	case events.ChannelRenamedEvent:
		guildID = e.GuildID
		embed = buildChannelRenamedEmbed(e, f.now())
	default:
		return
	}

	logger := log.WithFields(log.Fields{
		"guildID":   guildID,
		"eventType": event.Type(),
	})

	channelID, ok, err := f.logChannelService.GetLogChannel(ctx, guildID)
	if err != nil {
		logger.WithError(err).Debug("Audit log skipped: could not read log channels")
		return
	}
	if !ok {
		return
	}

	channel, err := f.poster.Channel(channelID)
	if err != nil || channel == nil {
		logger.WithField("channelID", channelID).Debug("Audit log skipped: log channel did not resolve")
		return
	}
	if channel.GuildID != strconv.FormatInt(guildID, 10) {
		logger.WithField("channelID", channelID).Debug("Audit log skipped: log channel belongs to another guild")
		return
	}

	if _, err := f.poster.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.WithError(err).Debug("Audit log entry could not be sent")
	}
}
