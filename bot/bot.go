package bot

import (
	"context"
	"fmt"
	"time"

	"govern/bot/features/auditlog"
	"govern/bot/features/beta"
	"govern/bot/features/guildrecords"
	"govern/bot/features/membership"
	"govern/bot/features/whitelist"
	"govern/events"
	"govern/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token        string
	GuildID      string // Commands are registered globally when empty
	PresenceName string
	PresenceURL  string
}

// Services bundles the domain services the bot dispatches to
type Services struct {
	Beta         service.BetaService
	GuildRecords service.GuildRecordService
	Whitelist    service.WhitelistService
	Membership   service.MembershipService
	LogChannels  service.LogChannelService
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	eventBus *events.Bus
	guilds   *guildTracker

	// Guilds joined before this instant are existing memberships, not joins
	startedAt time.Time

	// Features
	betaFeature         *beta.Feature
	guildRecordsFeature *guildrecords.Feature
	whitelistFeature    *whitelist.Feature
	auditLogFeature     *auditlog.Feature
	membershipFeature   *membership.Feature
}

func New(config Config, services Services, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	// Guild and channel lifecycle events only; no privileged intents
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:   config,
		session:  dg,
		eventBus: eventBus,
		guilds:   newGuildTracker(),

		startedAt: time.Now(),

		betaFeature:         beta.New(services.Beta),
		guildRecordsFeature: guildrecords.New(services.GuildRecords),
		whitelistFeature:    whitelist.New(services.Whitelist),
		auditLogFeature:     auditlog.New(services.LogChannels, auditlog.NewSessionPoster(dg)),
		membershipFeature:   membership.New(services.Membership, dg),
	}

	// Domain event subscribers
	bot.auditLogFeature.Subscribe(eventBus)
	bot.membershipFeature.Subscribe(eventBus)

	// Gateway handlers
	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleGuildDelete)
	dg.AddHandler(bot.handleChannelCreate)
	dg.AddHandler(bot.handleChannelUpdate)
	dg.AddHandler(bot.handleChannelDelete)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// handleReady seeds the tracker with the guilds announced at login. Handlers run
// concurrently, so a GUILD_CREATE may already have been seen; entries are only added.
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	ids := make([]string, 0, len(r.Guilds))
	for _, g := range r.Guilds {
		ids = append(ids, g.ID)
	}
	b.guilds.seed(ids)

	fields := log.Fields{"guilds": len(ids)}
	if r.User != nil {
		fields["user"] = r.User.String()
		fields["userID"] = r.User.ID
	}
	log.WithFields(fields).Info("Logged in")

	if b.config.PresenceName != "" {
		if err := s.UpdateStreamingStatus(0, b.config.PresenceName, b.config.PresenceURL); err != nil {
			log.Warnf("Failed to set presence: %v", err)
		}
	}
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "beta_admit":
		b.betaFeature.HandleCommand(s, i)
	case "guild_upsert", "guild_show":
		b.guildRecordsFeature.HandleCommand(s, i)
	case "guild_whitelist":
		b.whitelistFeature.HandleCommand(s, i)
	case "log_setup":
		b.auditLogFeature.HandleCommand(s, i)
	}
}

// handleGuildCreate publishes a join for guilds the bot was added to while running.
// GUILD_CREATE also fires for every startup guild as it lazily loads, possibly
// before handleReady has run, so membership that predates startup is told apart
// by its join time rather than by READY ordering.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.Guild == nil || g.Unavailable {
		return
	}
	if !joinedSince(g.Guild, b.startedAt) {
		b.guilds.seed([]string{g.ID})
		return
	}
	if !b.guilds.markJoined(g.ID) {
		return
	}

	event, err := guildJoinedEvent(g.Guild)
	if err != nil {
		log.Warnf("Ignoring guild create: %v", err)
		return
	}
	b.eventBus.Emit(context.Background(), event)
}

// handleGuildDelete forgets guilds the bot was removed from so a later re-add counts as a join
func (b *Bot) handleGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Guild == nil || g.Unavailable {
		return
	}
	b.guilds.forget(g.ID)
}

func (b *Bot) handleChannelCreate(s *discordgo.Session, c *discordgo.ChannelCreate) {
	if event, ok := channelCreatedEvent(c.Channel); ok {
		b.eventBus.Emit(context.Background(), event)
	}
}

func (b *Bot) handleChannelUpdate(s *discordgo.Session, c *discordgo.ChannelUpdate) {
	if event, ok := channelRenamedEvent(c.BeforeUpdate, c.Channel); ok {
		b.eventBus.Emit(context.Background(), event)
	}
}

func (b *Bot) handleChannelDelete(s *discordgo.Session, c *discordgo.ChannelDelete) {
	if event, ok := channelDeletedEvent(c.Channel); ok {
		b.eventBus.Emit(context.Background(), event)
	}
}
