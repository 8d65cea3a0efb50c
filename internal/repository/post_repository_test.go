package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yatube/yatube/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Password: "x"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedGroup(t *testing.T, db *gorm.DB, title, slug string) *model.Group {
	t.Helper()
	g := &model.Group{Title: title, Slug: slug, Description: "Тестовое описание"}
	require.NoError(t, NewGroupRepository(db).Create(context.Background(), g))
	return g
}

func TestPostListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := seedUser(t, db, "auth")
	group := seedGroup(t, db, "Тестовая группа!", "test_group")

	for i := 0; i < 13; i++ {
		require.NoError(t, repo.Create(ctx, &model.Post{
			Text:     fmt.Sprintf("Тестовый текст%d", i),
			AuthorID: author.ID,
			GroupID:  &group.ID,
		}))
	}

	first, err := repo.List(ctx, PostFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := repo.List(ctx, PostFilter{}, 10, 10)
	require.NoError(t, err)
	assert.Len(t, second, 3)

	total, err := repo.Count(ctx, PostFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 13, total)

	// same split through the group and author filters
	byGroup, err := repo.List(ctx, PostFilter{GroupID: &group.ID}, 10, 10)
	require.NoError(t, err)
	assert.Len(t, byGroup, 3)
	byAuthor, err := repo.List(ctx, PostFilter{AuthorID: author.ID}, 10, 10)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 3)
}

func TestPostListNewestFirstWithIDTieBreak(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := seedUser(t, db, "auth")

	at := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &model.Post{
			Text:      fmt.Sprintf("пост %d", i),
			AuthorID:  author.ID,
			CreatedAt: at,
		}))
	}

	posts, err := repo.List(ctx, PostFilter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []uint{3, 2, 1}, []uint{posts[0].ID, posts[1].ID, posts[2].ID})
}

func TestPostListGroupIsolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := seedUser(t, db, "auth")
	groupA := seedGroup(t, db, "Тестовая группа", "test_slug")
	groupB := seedGroup(t, db, "Тестовая группа 2", "test_slug2")

	require.NoError(t, repo.Create(ctx, &model.Post{Text: "Тестовый пост", AuthorID: author.ID, GroupID: &groupA.ID}))

	inA, err := repo.List(ctx, PostFilter{GroupID: &groupA.ID}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, inA, 1)

	inB, err := repo.List(ctx, PostFilter{GroupID: &groupB.ID}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, inB)
}

func TestPostListFollowerFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "test-author")
	follower := seedUser(t, db, "follower")
	notFollower := seedUser(t, db, "not_follower")
	require.NoError(t, followRepo.Create(ctx, follower.ID, author.ID))
	require.NoError(t, repo.Create(ctx, &model.Post{Text: "test_one_post", AuthorID: author.ID}))

	seen, err := repo.List(ctx, PostFilter{FollowerID: follower.ID}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, seen, 1)

	unseen, err := repo.List(ctx, PostFilter{FollowerID: notFollower.ID}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, unseen)
}

func TestPostGetByIDPreloadsAssociations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := seedUser(t, db, "Petr")
	group := seedGroup(t, db, "Тестовая группа", "test_slug")

	require.NoError(t, repo.Create(ctx, &model.Post{Text: "Тестовый пост", AuthorID: author.ID, GroupID: &group.ID}))

	post, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Petr", post.Author.Username)
	require.NotNil(t, post.Group)
	assert.Equal(t, "test_slug", post.Group.Slug)
}

func TestPostGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	_, err := NewPostRepository(db).GetByID(context.Background(), 777)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
