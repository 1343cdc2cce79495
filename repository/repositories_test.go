package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"govern/models"
	"govern/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetaUserRepository(t *testing.T) {
	dir := t.TempDir()
	repo := NewBetaUserRepository(NewFileStore(dir))
	ctx := context.Background()

	t.Run("empty when missing", func(t *testing.T) {
		list, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{}, list.Users)
	})

	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, models.BetaUserList{Users: []int64{42, 7}}))

		list, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{42, 7}, list.Users)

		data, err := os.ReadFile(filepath.Join(dir, "beta.json"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"users": [42, 7]}`, string(data))
	})
}

func TestGuildRecordRepository(t *testing.T) {
	dir := t.TempDir()
	repo := NewGuildRecordRepository(NewFileStore(dir))
	ctx := context.Background()

	records, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	saved := testutil.CreateTestGuildRecords(map[int64]*models.GuildRecord{
		99: testutil.CreateTestGuildRecord("Guild"),
		100: {Boosts: testutil.Int64Ptr(1)},
	})
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	t.Run("null records are normalised", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "server_data.json"),
			[]byte(`{"5": null, "6": {"server_name": null, "owner_id": null}}`), 0o644))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, &models.GuildRecord{}, loaded["5"])
		assert.Equal(t, &models.GuildRecord{}, loaded["6"])
	})
}

func TestWhitelistRepository(t *testing.T) {
	dir := t.TempDir()
	repo := NewWhitelistRepository(NewFileStore(dir))
	ctx := context.Background()

	list, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.Save(ctx, models.WhitelistedGuildList{1, 2, 3}))

	data, err := os.ReadFile(filepath.Join(dir, "purchased.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n    1,\n    2,\n    3\n]\n", string(data))

	list, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.WhitelistedGuildList{1, 2, 3}, list)
}

func TestLogChannelRepository(t *testing.T) {
	repo := NewLogChannelRepository(NewFileStore(t.TempDir()))
	ctx := context.Background()

	channels, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, channels)

	require.NoError(t, repo.Save(ctx, models.LogChannelMap{"10": "555"}))

	channels, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LogChannelMap{"10": "555"}, channels)
}

func TestNewRepositories_ShareStore(t *testing.T) {
	dir := t.TempDir()
	repos := NewRepositories(NewFileStore(dir))
	ctx := context.Background()

	require.NoError(t, repos.Whitelist.Save(ctx, models.WhitelistedGuildList{100}))
	require.NoError(t, repos.LogChannels.Save(ctx, models.LogChannelMap{"100": "200"}))

	for _, name := range []string{"purchased.json", "logs.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
