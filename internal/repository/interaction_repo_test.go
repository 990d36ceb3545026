package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/velora-app/velora-server/internal/db"
	"github.com/velora-app/velora-server/internal/repository"
)

func seedUsers(t *testing.T, gdb *gorm.DB, ids ...uint64) {
	t.Helper()
	for _, id := range ids {
		user := db.User{
			ID:           id,
			Username:     "user" + string(rune('0'+id)),
			Email:        "u" + string(rune('0'+id)) + "@test.com",
			PasswordHash: "x",
			Gender:       "female",
		}
		require.NoError(t, gdb.Create(&user).Error)
	}
}

func TestCreateLikeIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	created, err := repo.CreateLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, dbase.Model(&db.LikeEdge{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHasLikedIsDirectional(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInteractionRepository(setupTestDB(t))

	_, err := repo.CreateLike(ctx, 1, 2)
	require.NoError(t, err)

	liked, err := repo.HasLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasLiked(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestCreateMatchSingleRowPerPair(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	m1, created, err := repo.CreateMatch(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, created)

	// reversed order resolves to the same row
	m2, created, err := repo.CreateMatch(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, m1.ID, m2.ID)

	var count int64
	require.NoError(t, dbase.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := repo.GetMatch(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, m1.ID, got.ID)
	assert.Equal(t, uint64(1), got.User1ID)
	assert.Equal(t, uint64(2), got.User2ID)
}

func TestListMatchesJoinsOtherProfile(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	seedUsers(t, dbase, 1, 2, 3)
	repo := repository.NewInteractionRepository(dbase)

	_, _, err := repo.CreateMatch(ctx, 1, 2)
	require.NoError(t, err)
	_, _, err = repo.CreateMatch(ctx, 3, 1)
	require.NoError(t, err)

	entries, err := repo.ListMatches(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	others := []uint64{entries[0].OtherUserID, entries[1].OtherUserID}
	assert.ElementsMatch(t, []uint64{2, 3}, others)
	assert.NotEmpty(t, entries[0].Username)
}

func TestSkipIdempotentInsertAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInteractionRepository(setupTestDB(t))

	created, err := repo.CreateSkip(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateSkip(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, created)

	deleted, err := repo.DeleteSkip(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteSkip(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListSkipsIsDirectional(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	seedUsers(t, dbase, 1, 2)
	repo := repository.NewInteractionRepository(dbase)

	_, err := repo.CreateSkip(ctx, 1, 2)
	require.NoError(t, err)

	mine, err := repo.ListSkips(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint64(2), mine[0].UserID)

	// skipping A -> B never shows up in B's list
	theirs, err := repo.ListSkips(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, theirs, 0)
}
