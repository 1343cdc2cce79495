package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// whitelistService implements the WhitelistService interface
type whitelistService struct {
	gate      Authorizer
	whitelist WhitelistRepository
}

// NewWhitelistService creates a new whitelist service
func NewWhitelistService(gate Authorizer, whitelist WhitelistRepository) WhitelistService {
	return &whitelistService{
		gate:      gate,
		whitelist: whitelist,
	}
}

// WhitelistGuild adds a guild to the whitelist. Only owners may do this.
func (s *whitelistService) WhitelistGuild(ctx context.Context, actorID int64, rawGuildID string) (int64, bool, error) {
	if err := s.gate.Require(ctx, actorID, GateOwner); err != nil {
		return 0, false, err
	}

	guildID, err := ParseID(rawGuildID)
	if err != nil {
		return 0, false, err
	}

	list, err := s.whitelist.Load(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("failed to load whitelist: %w", err)
	}

	if list.Contains(guildID) {
		return guildID, false, nil
	}

	list = append(list, guildID)
	if err := s.whitelist.Save(ctx, list); err != nil {
		return 0, false, fmt.Errorf("failed to save whitelist: %w", err)
	}

	log.WithFields(log.Fields{
		"actorID": actorID,
		"guildID": guildID,
	}).Info("Whitelisted guild")

	return guildID, true, nil
}
