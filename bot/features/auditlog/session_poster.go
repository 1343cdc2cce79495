package auditlog

import (
	"github.com/bwmarrin/discordgo"
)

// sessionPoster resolves channels from the gateway cache before falling back to REST
type sessionPoster struct {
	*discordgo.Session
}

// NewSessionPoster wraps a session for audit delivery
func NewSessionPoster(s *discordgo.Session) ChannelPoster {
	return sessionPoster{Session: s}
}

func (p sessionPoster) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if p.State != nil && p.StateEnabled {
		if channel, err := p.State.Channel(channelID); err == nil {
			return channel, nil
		}
	}
	return p.Session.Channel(channelID, options...)
}
