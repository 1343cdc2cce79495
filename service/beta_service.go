package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// betaService implements the BetaService interface
type betaService struct {
	gate      Authorizer
	betaUsers BetaUserRepository
}

// NewBetaService creates a new beta service
func NewBetaService(gate Authorizer, betaUsers BetaUserRepository) BetaService {
	return &betaService{
		gate:      gate,
		betaUsers: betaUsers,
	}
}

// AdmitBetaTester adds a user to the beta list. Only owners may do this.
func (s *betaService) AdmitBetaTester(ctx context.Context, actorID int64, rawUserID string) (int64, bool, error) {
	if err := s.gate.Require(ctx, actorID, GateOwner); err != nil {
		return 0, false, err
	}

	userID, err := ParseID(rawUserID)
	if err != nil {
		return 0, false, err
	}

	list, err := s.betaUsers.Load(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("failed to load beta users: %w", err)
	}

	if list.Contains(userID) {
		return userID, false, nil
	}

	list.Users = append(list.Users, userID)
	if err := s.betaUsers.Save(ctx, list); err != nil {
		return 0, false, fmt.Errorf("failed to save beta users: %w", err)
	}

	log.WithFields(log.Fields{
		"actorID": actorID,
		"userID":  userID,
	}).Info("Admitted beta tester")

	return userID, true, nil
}
