// Package testutil provides fakes for exercising Discord handlers without a gateway.
package testutil

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// FakeResponder records interaction responses and follow-ups
type FakeResponder struct {
	mu        sync.Mutex
	Responses []*discordgo.InteractionResponse
	Followups []*discordgo.WebhookParams

	RespondErr  error
	FollowupErr error
}

func (f *FakeResponder) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses = append(f.Responses, resp)
	return f.RespondErr
}

func (f *FakeResponder) FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Followups = append(f.Followups, data)
	if f.FollowupErr != nil {
		return nil, f.FollowupErr
	}
	return &discordgo.Message{ID: "1"}, nil
}

// LastResponse returns the most recent interaction response, or nil
func (f *FakeResponder) LastResponse() *discordgo.InteractionResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Responses) == 0 {
		return nil
	}
	return f.Responses[len(f.Responses)-1]
}

// CommandInteraction builds a slash command interaction invoked by userID in guildID/channelID.
// An empty guildID produces a DM interaction.
func CommandInteraction(name, userID, guildID, channelID string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	interaction := &discordgo.Interaction{
		ID:        "1000",
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   guildID,
		ChannelID: channelID,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: options,
		},
	}

	user := &discordgo.User{ID: userID, Username: "tester"}
	if guildID != "" {
		interaction.Member = &discordgo.Member{User: user}
	} else {
		interaction.User = user
	}

	return &discordgo.InteractionCreate{Interaction: interaction}
}

// StringOption builds a string command option
func StringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// IntOption builds an integer command option. Discord delivers numbers as float64.
func IntOption(name string, value int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

// BoolOption builds a boolean command option
func BoolOption(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: value,
	}
}
