package guildrecords

import (
	"fmt"

	"govern/bot/common"
	"govern/models"

	"github.com/bwmarrin/discordgo"
)

// buildRecordEmbed renders a guild record. Unknown attributes show as N/A.
func buildRecordEmbed(key string, record *models.GuildRecord) *discordgo.MessageEmbed {
	name := "Unknown"
	if record.ServerName != nil && *record.ServerName != "" {
		name = *record.ServerName
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Server Information for %s", name),
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Guild ID", Value: key, Inline: true},
			{Name: "Server Name", Value: common.FormatString(record.ServerName), Inline: true},
			{Name: "Owner ID", Value: common.FormatInt(record.OwnerID), Inline: true},
			{Name: "Owner Name", Value: common.FormatString(record.OwnerName), Inline: true},
			{Name: "Region", Value: common.FormatString(record.Region), Inline: true},
			{Name: "Boosts", Value: common.FormatInt(record.Boosts), Inline: true},
			{Name: "Member Count", Value: common.FormatInt(record.MemberCount), Inline: true},
			{Name: "Bot Count", Value: common.FormatInt(record.BotCount), Inline: true},
			{Name: "Verification Level", Value: common.FormatString(record.VerificationLevel), Inline: true},
		},
	}
}
