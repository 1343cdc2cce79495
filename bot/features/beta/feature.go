package beta

import (
	"govern/bot/common"
	"govern/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	betaService service.BetaService
}

func New(betaService service.BetaService) *Feature {
	return &Feature{
		betaService: betaService,
	}
}

func (f *Feature) HandleCommand(s common.Responder, i *discordgo.InteractionCreate) {
	f.handleAdmit(s, i)
}
