package guildrecords

import (
	"govern/bot/common"
	"govern/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

type Feature struct {
	recordService service.GuildRecordService
}

func New(recordService service.GuildRecordService) *Feature {
	return &Feature{
		recordService: recordService,
	}
}

// HandleCommand routes /guild_upsert and /guild_show
func (f *Feature) HandleCommand(s common.Responder, i *discordgo.InteractionCreate) {
	switch name := i.ApplicationCommandData().Name; name {
	case "guild_upsert":
		f.handleUpsert(s, i)
	case "guild_show":
		f.handleShow(s, i)
	default:
		log.Warnf("guildrecords: unexpected command %q", name)
	}
}
