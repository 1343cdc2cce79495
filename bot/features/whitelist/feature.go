package whitelist

import (
	"govern/bot/common"
	"govern/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	whitelistService service.WhitelistService
}

func New(whitelistService service.WhitelistService) *Feature {
	return &Feature{
		whitelistService: whitelistService,
	}
}

func (f *Feature) HandleCommand(s common.Responder, i *discordgo.InteractionCreate) {
	f.handleWhitelist(s, i)
}
