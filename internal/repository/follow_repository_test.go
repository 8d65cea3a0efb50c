package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatube/yatube/internal/model"
)

func TestFollowCreateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	follower := seedUser(t, db, "follower")
	author := seedUser(t, db, "test-author")

	require.NoError(t, repo.Create(ctx, follower.ID, author.ID))
	require.NoError(t, repo.Create(ctx, follower.ID, author.ID))

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestFollowDeleteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	follower := seedUser(t, db, "follower")
	author := seedUser(t, db, "test-author")

	require.NoError(t, repo.Create(ctx, follower.ID, author.ID))
	require.NoError(t, repo.Delete(ctx, follower.ID, author.ID))
	// deleting an absent edge is a no-op
	require.NoError(t, repo.Delete(ctx, follower.ID, author.ID))

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.EqualValues(t, 0, cnt)
}

func TestFollowExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	follower := seedUser(t, db, "follower")
	author := seedUser(t, db, "test-author")

	ok, err := repo.Exists(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Create(ctx, follower.ID, author.ID))
	ok, err = repo.Exists(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// direction matters
	ok, err = repo.Exists(ctx, author.ID, follower.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListFollowings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	follower := seedUser(t, db, "follower")
	first := seedUser(t, db, "first-author")
	second := seedUser(t, db, "second-author")
	other := seedUser(t, db, "other")

	require.NoError(t, repo.Create(ctx, follower.ID, first.ID))
	require.NoError(t, repo.Create(ctx, follower.ID, second.ID))
	// 别人的关注不串流
	require.NoError(t, repo.Create(ctx, other.ID, first.ID))

	edges, err := repo.ListFollowings(ctx, follower.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	followees := []string{edges[0].FolloweeID, edges[1].FolloweeID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, followees)

	edges, err = repo.ListFollowings(ctx, follower.ID, 0, 1)
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}
