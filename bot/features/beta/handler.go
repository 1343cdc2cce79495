package beta

import (
	"context"
	"fmt"

	"govern/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const invalidUserIDMessage = "Invalid user ID. Please enter a valid number."

// handleAdmit handles the /beta_admit command
func (f *Feature) handleAdmit(s common.Responder, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	actorID, err := common.InvokerID(i)
	if err != nil {
		common.RespondWithBotError(s, i, common.NewSystemError(err, "/beta_admit: unknown invoker"))
		return
	}

	var rawUserID string
	if opt, ok := common.OptionMap(i)["user_id"]; ok {
		rawUserID = opt.StringValue()
	}

	userID, added, err := f.betaService.AdmitBetaTester(ctx, actorID, rawUserID)
	if err != nil {
		common.RespondWithBotError(s, i, common.ClassifyError(err, "beta_admit", invalidUserIDMessage))
		return
	}

	if !added {
		common.RespondWithNotice(s, i, fmt.Sprintf("User ID %d is already in the beta user list.", userID))
		return
	}

	log.WithFields(log.Fields{
		"actorID": actorID,
		"userID":  userID,
	}).Info("Beta tester admitted via command")

	common.RespondWithSuccess(s, i, fmt.Sprintf("User ID %d has been added to the beta user list.", userID))
}
