package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yatube/yatube/internal/form"
	"github.com/yatube/yatube/internal/model"
	"github.com/yatube/yatube/internal/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNotAuthor    = errors.New("acting user is not the author")
	ErrUnknownGroup = errors.New("group does not exist")
)

// Page is one feed page plus the filter-wide total.
type Page struct {
	Items    []*model.Post `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// PostService 组装各路 feed 并执行发帖 / 编辑规则
type PostService interface {
	Index(ctx context.Context, page int) (*Page, error)
	GroupFeed(ctx context.Context, slug string, page int) (*model.Group, *Page, error)
	ProfileFeed(ctx context.Context, username string, page int) (*model.User, *Page, error)
	FollowFeed(ctx context.Context, viewerID string, page int) (*Page, error)
	Detail(ctx context.Context, id uint) (*model.Post, []*model.Comment, int64, error)
	Create(ctx context.Context, authorID string, f form.PostForm, imagePath string) (*model.Post, error)
	Edit(ctx context.Context, actorID string, id uint, f form.PostForm, imagePath string) (*model.Post, error)
	Delete(ctx context.Context, actorID string, id uint) error
	AddComment(ctx context.Context, authorID string, postID uint, f form.CommentForm) (*model.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	pageSize    int
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	pageSize int,
) PostService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &postService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		pageSize:    pageSize,
	}
}

func (s *postService) page(ctx context.Context, f repository.PostFilter, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.pageSize
	items, err := s.postRepo.List(ctx, f, offset, s.pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Total: total, Page: page, PageSize: s.pageSize}, nil
}

func (s *postService) Index(ctx context.Context, page int) (*Page, error) {
	return s.page(ctx, repository.PostFilter{}, page)
}

func (s *postService) GroupFeed(ctx context.Context, slug string, page int) (*model.Group, *Page, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}
	p, err := s.page(ctx, repository.PostFilter{GroupID: &group.ID}, page)
	if err != nil {
		return nil, nil, err
	}
	return group, p, nil
}

func (s *postService) ProfileFeed(ctx context.Context, username string, page int) (*model.User, *Page, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}
	p, err := s.page(ctx, repository.PostFilter{AuthorID: author.ID}, page)
	if err != nil {
		return nil, nil, err
	}
	return author, p, nil
}

func (s *postService) FollowFeed(ctx context.Context, viewerID string, page int) (*Page, error) {
	return s.page(ctx, repository.PostFilter{FollowerID: viewerID}, page)
}

func (s *postService) Detail(ctx context.Context, id uint) (*model.Post, []*model.Comment, int64, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, 0, mapNotFound(err)
	}
	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, 0, err
	}
	count, err := s.commentRepo.CountByPost(ctx, id)
	if err != nil {
		return nil, nil, 0, err
	}
	return post, comments, count, nil
}

func (s *postService) Create(ctx context.Context, authorID string, f form.PostForm, imagePath string) (*model.Post, error) {
	groupID, err := s.resolveGroup(ctx, f.GroupID)
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		Text:     f.Text,
		AuthorID: authorID,
		GroupID:  groupID,
		Image:    imagePath,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// Edit updates text/group/image in place. Only the original author may
// edit; everyone else gets ErrNotAuthor and the handler redirects.
func (s *postService) Edit(ctx context.Context, actorID string, id uint, f form.PostForm, imagePath string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if post.AuthorID != actorID {
		return nil, ErrNotAuthor
	}
	groupID, err := s.resolveGroup(ctx, f.GroupID)
	if err != nil {
		return nil, err
	}
	post.Text = f.Text
	post.GroupID = groupID
	post.Group = nil
	if imagePath != "" {
		post.Image = imagePath
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *postService) Delete(ctx context.Context, actorID string, id uint) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if post.AuthorID != actorID {
		return ErrNotAuthor
	}
	return s.postRepo.Delete(ctx, id)
}

func (s *postService) AddComment(ctx context.Context, authorID string, postID uint, f form.CommentForm) (*model.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, mapNotFound(err)
	}
	comment := &model.Comment{PostID: postID, AuthorID: authorID, Text: f.Text}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *postService) resolveGroup(ctx context.Context, groupID *uint) (*uint, error) {
	if groupID == nil {
		return nil, nil
	}
	group, err := s.groupRepo.GetByID(ctx, *groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownGroup
		}
		return nil, err
	}
	return &group.ID, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
