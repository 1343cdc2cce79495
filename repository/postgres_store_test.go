package repository

import (
	"context"
	"testing"

	"govern/models"
	"govern/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewPostgresStore(testDB.DB)
	ctx := context.Background()

	t.Run("missing document", func(t *testing.T) {
		_, err := store.Read(ctx, "beta")
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("round trip through repository", func(t *testing.T) {
		repo := NewWhitelistRepository(store)

		require.NoError(t, repo.Save(ctx, models.WhitelistedGuildList{1, 2}))
		require.NoError(t, repo.Save(ctx, models.WhitelistedGuildList{1, 2, 3}))

		list, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.WhitelistedGuildList{1, 2, 3}, list)
	})

	t.Run("guild records", func(t *testing.T) {
		repo := NewGuildRecordRepository(store)
		records := testutil.CreateTestGuildRecords(map[int64]*models.GuildRecord{
			99: testutil.CreateTestGuildRecord("Guild"),
		})

		require.NoError(t, repo.Save(ctx, records))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, records, loaded)
	})
}
