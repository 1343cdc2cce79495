package service

import (
	"context"
)

// membershipService implements the MembershipService interface
type membershipService struct {
	gate Authorizer
}

// NewMembershipService creates a new membership service
func NewMembershipService(gate Authorizer) MembershipService {
	return &membershipService{gate: gate}
}

// ShouldRemain is true only for whitelisted guilds; an unreadable whitelist means leave
func (s *membershipService) ShouldRemain(ctx context.Context, guildID int64) bool {
	return s.gate.Authorize(ctx, guildID, GateWhitelistedGuild)
}
