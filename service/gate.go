package service

import (
	"context"
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
)

// GateKind is the category of permission check applied before an action
type GateKind int

const (
	GateOwner GateKind = iota
	GateBetaTester
	GateWhitelistedGuild
)

func (k GateKind) String() string {
	switch k {
	case GateOwner:
		return "owner"
	case GateBetaTester:
		return "beta_tester"
	case GateWhitelistedGuild:
		return "whitelisted_guild"
	default:
		return fmt.Sprintf("gate(%d)", int(k))
	}
}

// Gate checks subjects against the owner set and the persisted allow-lists.
// The allow-lists are reloaded on every check so edits are visible immediately.
type Gate struct {
	ownerIDs      []int64
	betaUsers     BetaUserRepository
	whitelistRepo WhitelistRepository
}

// NewGate creates a gate for the given owner set
func NewGate(ownerIDs []int64, betaUsers BetaUserRepository, whitelistRepo WhitelistRepository) *Gate {
	return &Gate{
		ownerIDs:      slices.Clone(ownerIDs),
		betaUsers:     betaUsers,
		whitelistRepo: whitelistRepo,
	}
}

// Authorize reports whether subjectID passes the gate
func (g *Gate) Authorize(ctx context.Context, subjectID int64, kind GateKind) bool {
	switch kind {
	case GateOwner:
		return slices.Contains(g.ownerIDs, subjectID)

	case GateBetaTester:
		list, err := g.betaUsers.Load(ctx)
		if err != nil {
			log.WithFields(log.Fields{
				"subjectID": subjectID,
				"gate":      kind,
				"error":     err,
			}).Error("Failed to load beta users, denying")
			return false
		}
		return list.Contains(subjectID)

	case GateWhitelistedGuild:
		list, err := g.whitelistRepo.Load(ctx)
		if err != nil {
			log.WithFields(log.Fields{
				"subjectID": subjectID,
				"gate":      kind,
				"error":     err,
			}).Error("Failed to load whitelist, denying")
			return false
		}
		return list.Contains(subjectID)
	}

	return false
}

// Require returns ErrPermissionDenied when subjectID does not pass the gate
func (g *Gate) Require(ctx context.Context, subjectID int64, kind GateKind) error {
	if !g.Authorize(ctx, subjectID, kind) {
		return fmt.Errorf("%w: %d failed %s check", ErrPermissionDenied, subjectID, kind)
	}
	return nil
}
