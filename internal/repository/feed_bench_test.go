package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yatube/yatube/internal/model"
)

func setupBenchDB(b *testing.B) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.Follow{}); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	return db
}

func BenchmarkFollowWrite(b *testing.B) {
	db := setupBenchDB(b)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	// 预创建部分用户
	users := make([]model.User, 1000)
	for i := range users {
		users[i] = model.User{ID: fmt.Sprintf("u%04d", i), Username: fmt.Sprintf("u%04d", i), Password: "p"}
	}
	if err := db.Create(&users).Error; err != nil {
		b.Fatalf("seed users: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[rand.Intn(len(users))].ID
		to := users[rand.Intn(len(users))].ID
		if from == to {
			continue
		}
		_ = followRepo.Create(ctx, from, to)
	}
}

func BenchmarkFollowFeedQuery(b *testing.B) {
	db := setupBenchDB(b)
	followRepo := NewFollowRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	// 构造：u0 关注 N 个作者，每个作者各发 5 帖
	const authors = 500
	u0 := model.User{ID: "u0", Username: "u0", Password: "p"}
	_ = db.Create(&u0).Error
	for i := 1; i <= authors; i++ {
		uid := fmt.Sprintf("u%v", i)
		_ = db.Create(&model.User{ID: uid, Username: uid, Password: "p"}).Error
		_ = followRepo.Create(ctx, u0.ID, uid)
		for j := 0; j < 5; j++ {
			_ = postRepo.Create(ctx, &model.Post{Text: fmt.Sprintf("post %d/%d", i, j), AuthorID: uid})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = postRepo.List(ctx, PostFilter{FollowerID: u0.ID}, 0, 10)
	}
}
