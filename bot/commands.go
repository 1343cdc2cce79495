package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

var (
	manageGuildPermission int64 = discordgo.PermissionManageGuild
	minCount                    = 0.0
	guildOnly                   = []discordgo.InteractionContextType{discordgo.InteractionContextGuild}
)

// commandDefinitions describes every slash command the bot serves. Discord IDs are
// taken as strings because snowflakes exceed the integer option range.
func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "beta_admit",
			Description: "[OWNER] Adds a user ID to the beta user list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "user_id",
					Description: "The user ID to add to the beta list",
					Required:    true,
				},
			},
		},
		{
			Name:        "guild_upsert",
			Description: "Add or update server data (beta feature)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "guild_id",
					Description: "The ID of the server",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "server_name",
					Description: "The name of the server",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "owner_id",
					Description: "The user ID of the server owner",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "region",
					Description: "The region of the server",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "boosts",
					Description: "The number of boosts",
					MinValue:    &minCount,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "member_count",
					Description: "The number of members",
					MinValue:    &minCount,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bot_count",
					Description: "The number of bots",
					MinValue:    &minCount,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "owner_name",
					Description: "The name of the server owner",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "verification_level",
					Description: "The verification level of the server",
				},
			},
		},
		{
			Name:        "guild_show",
			Description: "Shows server information",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "guild_id",
					Description: "The ID of the server",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "private",
					Description: "Only show the result to you",
				},
			},
		},
		{
			Name:        "guild_whitelist",
			Description: "[OWNER] Whitelist a server to use the bot",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "guild_id",
					Description: "The ID of the server to whitelist",
					Required:    true,
				},
			},
		},
		{
			Name:                     "log_setup",
			Description:              "Use this channel for channel audit logs",
			DefaultMemberPermissions: &manageGuildPermission,
			Contexts:                 &guildOnly,
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	for _, cmd := range commandDefinitions() {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
