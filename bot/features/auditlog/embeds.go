package auditlog

import (
	"fmt"
	"strconv"
	"time"

	"govern/bot/common"
	"govern/events"

	"github.com/bwmarrin/discordgo"
)

func buildChannelCreatedEmbed(e events.ChannelCreatedEvent, at time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Channel Created",
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Name", Value: e.ChannelName},
			{Name: "ID", Value: strconv.FormatInt(e.ChannelID, 10)},
		},
		Timestamp: common.FormatTimestamp(at),
	}
}

func buildChannelDeletedEmbed(e events.ChannelDeletedEvent, at time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Channel Deleted",
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Name", Value: e.ChannelName},
			{Name: "ID", Value: strconv.FormatInt(e.ChannelID, 10)},
		},
		Timestamp: common.FormatTimestamp(at),
	}
}

func buildChannelRenamedEmbed(e events.ChannelRenamedEvent, at time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Channel Updated",
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Name Changed", Value: fmt.Sprintf("Before: %s\nAfter: %s", e.OldName, e.NewName)},
		},
		Timestamp: common.FormatTimestamp(at),
	}
}
