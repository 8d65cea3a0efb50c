package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yatube/yatube/internal/model"
)

// PostFilter narrows a feed query. Zero value means the full index feed.
// FollowerID selects posts whose author is followed by that user.
type PostFilter struct {
	GroupID    *uint
	AuthorID   string
	FollowerID string
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, f PostFilter, offset, limit int) ([]*model.Post, error)
	Count(ctx context.Context, f PostFilter) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		First(&p, "posts.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) List(ctx context.Context, f PostFilter, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.filtered(ctx, f).
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *postRepository) Count(ctx context.Context, f PostFilter) (int64, error) {
	var cnt int64
	err := r.filtered(ctx, f).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) filtered(ctx context.Context, f PostFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Post{})
	if f.GroupID != nil {
		q = q.Where("group_id = ?", *f.GroupID)
	}
	if f.AuthorID != "" {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if f.FollowerID != "" {
		q = q.Where("author_id IN (?)",
			r.db.WithContext(ctx).Model(&model.Follow{}).Select("followee_id").Where("follower_id = ?", f.FollowerID))
	}
	return q
}
