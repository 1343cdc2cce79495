package guildrecords

import (
	"context"
	"errors"
	"fmt"

	"govern/bot/common"
	"govern/models"
	"govern/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const invalidIDMessage = "Invalid ID. Server and owner IDs must be numeric."

// handleUpsert handles the /guild_upsert command
func (f *Feature) handleUpsert(s common.Responder, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	actorID, err := common.InvokerID(i)
	if err != nil {
		common.RespondWithBotError(s, i, common.NewSystemError(err, "/guild_upsert: unknown invoker"))
		return
	}

	options := common.OptionMap(i)

	upsert := service.GuildRecordUpsert{Patch: patchFromOptions(options)}
	if opt, ok := options["guild_id"]; ok {
		upsert.GuildID = opt.StringValue()
	}
	if opt, ok := options["owner_id"]; ok {
		ownerID := opt.StringValue()
		upsert.OwnerID = &ownerID
	}

	// IDs are parsed by the service after the beta check
	guildID, record, created, err := f.recordService.UpsertGuildRecord(ctx, actorID, upsert)
	if err != nil {
		common.RespondWithBotError(s, i, common.ClassifyError(err, "guild_upsert", invalidIDMessage))
		return
	}

	verb := "updated"
	if created {
		verb = "added"
	}
	common.RespondWithSuccess(s, i, fmt.Sprintf("Server data for server ID %d %s successfully.", guildID, verb))

	// The summary is public so the channel sees the new state
	if _, err := common.FollowUpWithEmbed(s, i, buildRecordEmbed(models.GuildKey(guildID), record), false); err != nil {
		log.WithFields(log.Fields{
			"guildID": guildID,
			"error":   err,
		}).Error("Failed to send guild record summary")
	}
}

// handleShow handles the /guild_show command
func (f *Feature) handleShow(s common.Responder, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	options := common.OptionMap(i)

	var rawGuildID string
	if opt, ok := options["guild_id"]; ok {
		rawGuildID = opt.StringValue()
	}
	private := false
	if opt, ok := options["private"]; ok {
		private = opt.BoolValue()
	}

	key, record, err := f.recordService.GetGuildRecord(ctx, rawGuildID)
	if errors.Is(err, service.ErrNotFound) {
		if err := common.RespondWithMessage(s, i, fmt.Sprintf("Server with ID %s not found in the database.", key), true); err != nil {
			log.Errorf("Error responding to guild_show: %v", err)
		}
		return
	}
	if err != nil {
		common.RespondWithBotError(s, i, common.NewSystemError(err, "/guild_show failed"))
		return
	}

	if err := common.RespondWithEmbed(s, i, buildRecordEmbed(key, record), private); err != nil {
		log.Errorf("Error responding to guild_show: %v", err)
	}
}

// patchFromOptions collects the optional record attributes that were supplied.
// owner_id is left to the service.
func patchFromOptions(options map[string]*discordgo.ApplicationCommandInteractionDataOption) models.GuildRecordPatch {
	var patch models.GuildRecordPatch

	stringOpt := func(name string) *string {
		opt, ok := options[name]
		if !ok {
			return nil
		}
		v := opt.StringValue()
		return &v
	}
	intOpt := func(name string) *int64 {
		opt, ok := options[name]
		if !ok {
			return nil
		}
		v := opt.IntValue()
		return &v
	}

	patch.ServerName = stringOpt("server_name")
	patch.Region = stringOpt("region")
	patch.OwnerName = stringOpt("owner_name")
	patch.VerificationLevel = stringOpt("verification_level")
	patch.Boosts = intOpt("boosts")
	patch.MemberCount = intOpt("member_count")
	patch.BotCount = intOpt("bot_count")

	return patch
}
