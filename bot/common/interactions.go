package common

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// InvokerID returns the ID of the user who triggered the interaction. Guild
// interactions carry a Member, DM interactions a User.
func InvokerID(i *discordgo.InteractionCreate) (int64, error) {
	var userID string
	switch {
	case i.Member != nil && i.Member.User != nil:
		userID = i.Member.User.ID
	case i.User != nil:
		userID = i.User.ID
	default:
		return 0, fmt.Errorf("interaction %s has no invoking user", i.ID)
	}

	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID %q: %w", userID, err)
	}
	return id, nil
}

// OptionMap indexes the top-level command options by name
func OptionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}
	return optionMap
}
