package repository

import (
	"context"

	"govern/models"
)

// BetaUserRepository persists the beta tester allow-list
type BetaUserRepository struct {
	store DocumentStore
}

// NewBetaUserRepository creates a new beta user repository
func NewBetaUserRepository(store DocumentStore) *BetaUserRepository {
	return &BetaUserRepository{store: store}
}

// Load reads the current beta user list
func (r *BetaUserRepository) Load(ctx context.Context) (models.BetaUserList, error) {
	list, err := LoadDocument[models.BetaUserList](ctx, r.store, BetaUsersDocument)
	if err != nil {
		return models.BetaUserList{}, err
	}
	if list.Users == nil {
		list.Users = []int64{}
	}
	return list, nil
}

// Save replaces the beta user list
func (r *BetaUserRepository) Save(ctx context.Context, list models.BetaUserList) error {
	if list.Users == nil {
		list.Users = []int64{}
	}
	return SaveDocument(ctx, r.store, BetaUsersDocument, list)
}
