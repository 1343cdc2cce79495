package whitelist

import (
	"context"
	"fmt"

	"govern/bot/common"

	"github.com/bwmarrin/discordgo"
)

const invalidGuildIDMessage = "Invalid Server ID. Please enter a numeric Server ID."

// handleWhitelist handles the /guild_whitelist command
func (f *Feature) handleWhitelist(s common.Responder, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	actorID, err := common.InvokerID(i)
	if err != nil {
		common.RespondWithBotError(s, i, common.NewSystemError(err, "/guild_whitelist: unknown invoker"))
		return
	}

	var rawGuildID string
	if opt, ok := common.OptionMap(i)["guild_id"]; ok {
		rawGuildID = opt.StringValue()
	}

	guildID, added, err := f.whitelistService.WhitelistGuild(ctx, actorID, rawGuildID)
	if err != nil {
		common.RespondWithBotError(s, i, common.ClassifyError(err, "guild_whitelist", invalidGuildIDMessage))
		return
	}

	if !added {
		common.RespondWithNotice(s, i, fmt.Sprintf("Server ID %d is already whitelisted.", guildID))
		return
	}

	common.RespondWithSuccess(s, i, fmt.Sprintf("Server ID %d has been whitelisted.", guildID))
}
