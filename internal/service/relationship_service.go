package service

import (
	"context"
	"errors"

	"github.com/yatube/yatube/internal/model"
	"github.com/yatube/yatube/internal/repository"
)

var (
	ErrFollowSelf = errors.New("cannot follow self")
)

// 关注页侧栏的作者列表上限
const followingsLimit = 100

// RelationshipService 关系链服务：关注 / 取关目标作者（按用户名定位）
type RelationshipService interface {
	Follow(ctx context.Context, followerID, authorUsername string) error
	Unfollow(ctx context.Context, followerID, authorUsername string) error
	IsFollowing(ctx context.Context, followerID, authorUsername string) (bool, error)
	Followings(ctx context.Context, followerID string) ([]*model.User, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo}
}

func (s *relationshipService) Follow(ctx context.Context, followerID, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return mapNotFound(err)
	}
	if followerID == author.ID {
		return ErrFollowSelf
	}
	// 幂等由 (follower, followee) 唯一键保证
	return s.followRepo.Create(ctx, followerID, author.ID)
}

func (s *relationshipService) Unfollow(ctx context.Context, followerID, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return mapNotFound(err)
	}
	return s.followRepo.Delete(ctx, followerID, author.ID)
}

func (s *relationshipService) IsFollowing(ctx context.Context, followerID, authorUsername string) (bool, error) {
	if followerID == "" {
		return false, nil
	}
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return false, mapNotFound(err)
	}
	return s.followRepo.Exists(ctx, followerID, author.ID)
}

// Followings 返回关注列表中的作者，按关注时间排序
func (s *relationshipService) Followings(ctx context.Context, followerID string) ([]*model.User, error) {
	edges, err := s.followRepo.ListFollowings(ctx, followerID, 0, followingsLimit)
	if err != nil {
		return nil, err
	}
	authors := make([]*model.User, 0, len(edges))
	for _, edge := range edges {
		author, err := s.userRepo.GetByID(ctx, edge.FolloweeID)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	return authors, nil
}
