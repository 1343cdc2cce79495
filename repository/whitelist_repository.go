package repository

import (
	"context"

	"govern/models"
)

// WhitelistRepository persists the whitelisted guild IDs
type WhitelistRepository struct {
	store DocumentStore
}

// NewWhitelistRepository creates a new whitelist repository
func NewWhitelistRepository(store DocumentStore) *WhitelistRepository {
	return &WhitelistRepository{store: store}
}

// Load reads the whitelisted guild IDs
func (r *WhitelistRepository) Load(ctx context.Context) (models.WhitelistedGuildList, error) {
	list, err := LoadDocument[models.WhitelistedGuildList](ctx, r.store, WhitelistDocument)
	if err != nil {
		return models.WhitelistedGuildList{}, err
	}
	if list == nil {
		list = models.WhitelistedGuildList{}
	}
	return list, nil
}

// Save replaces the whitelisted guild IDs
func (r *WhitelistRepository) Save(ctx context.Context, list models.WhitelistedGuildList) error {
	if list == nil {
		list = models.WhitelistedGuildList{}
	}
	return SaveDocument(ctx, r.store, WhitelistDocument, list)
}
