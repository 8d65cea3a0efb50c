package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube/internal/api/middleware"
	"github.com/yatube/yatube/internal/form"
	"github.com/yatube/yatube/internal/media"
	"github.com/yatube/yatube/internal/service"
	"github.com/yatube/yatube/pkg/response"
)

// Index 首页 feed（整页响应走 page cache）
// @Summary 首页 feed
// @Tags posts
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	page, err := h.posts.Index(c.Request.Context(), pageNumber(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page_obj": newPageView(page)})
}

// GroupFeed 分组 feed
// @Summary 分组 feed
// @Tags posts
// @Param slug path string true "分组 slug"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /group/{slug}/ [get]
func (h *Handler) GroupFeed(c *gin.Context) {
	group, page, err := h.posts.GroupFeed(c.Request.Context(), c.Param("slug"), pageNumber(c))
	if errors.Is(err, service.ErrNotFound) {
		response.NotFound(c, "group not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"group": newGroupView(group), "page_obj": newPageView(page)})
}

// Profile 作者主页：feed + 总帖数 + 当前观察者是否已关注
// @Summary 作者主页
// @Tags posts
// @Param username path string true "用户名"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/{username}/ [get]
func (h *Handler) Profile(c *gin.Context) {
	username := c.Param("username")
	author, page, err := h.posts.ProfileFeed(c.Request.Context(), username, pageNumber(c))
	if errors.Is(err, service.ErrNotFound) {
		response.NotFound(c, "profile not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	following, err := h.rels.IsFollowing(c.Request.Context(), middleware.CurrentUserID(c), username)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{
		"author":    newUserView(author),
		"count":     page.Total,
		"following": following,
		"page_obj":  newPageView(page),
	})
}

// PostDetail 帖子详情 + 评论串 + 评论数
// @Summary 帖子详情
// @Tags posts
// @Param id path int true "帖子 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id}/ [get]
func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		response.NotFound(c, "post not found")
		return
	}
	post, comments, count, err := h.posts.Detail(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		response.NotFound(c, "post not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{
		"post":           newPostView(post),
		"comments":       newCommentViews(comments),
		"comments_count": count,
		"form":           form.CommentForm{}.Fields(),
	})
}

// CreateForm 发帖表单元数据
// @Summary 发帖表单
// @Tags posts
// @Success 200 {object} response.Response
// @Router /create/ [get]
func (h *Handler) CreateForm(c *gin.Context) {
	response.Success(c, gin.H{"form": form.PostForm{}.Fields(), "is_edit": false})
}

// CreatePost 发帖
// @Summary 发帖
// @Tags posts
// @Accept mpfd
// @Success 302
// @Failure 400 {object} response.Response
// @Router /create/ [post]
func (h *Handler) CreatePost(c *gin.Context) {
	f, imagePath, ok := h.bindPostForm(c)
	if !ok {
		return
	}
	if _, err := h.posts.Create(c.Request.Context(), middleware.CurrentUserID(c), f, imagePath); err != nil {
		if errors.Is(err, service.ErrUnknownGroup) {
			response.FormErrors(c, map[string]string{"group": "группа не существует"})
			return
		}
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+middleware.CurrentUsername(c)+"/")
}

// EditForm 编辑表单；非作者重定向回详情页
// @Summary 编辑表单
// @Tags posts
// @Param id path int true "帖子 ID"
// @Success 200 {object} response.Response
// @Router /posts/{id}/edit/ [get]
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		response.NotFound(c, "post not found")
		return
	}
	post, _, _, err := h.posts.Detail(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		response.NotFound(c, "post not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post.AuthorID != middleware.CurrentUserID(c) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
		return
	}
	response.Success(c, gin.H{"form": form.PostForm{}.Fields(), "is_edit": true, "post": newPostView(post)})
}

// EditPost 编辑帖子；仅作者，其他人重定向（而非 403）
// @Summary 编辑帖子
// @Tags posts
// @Accept mpfd
// @Param id path int true "帖子 ID"
// @Success 302
// @Failure 400 {object} response.Response
// @Router /posts/{id}/edit/ [post]
func (h *Handler) EditPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		response.NotFound(c, "post not found")
		return
	}
	// 非作者先跳转，不落地上传文件
	post, _, _, err := h.posts.Detail(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		response.NotFound(c, "post not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post.AuthorID != middleware.CurrentUserID(c) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
		return
	}
	f, imagePath, ok := h.bindPostForm(c)
	if !ok {
		return
	}
	_, err = h.posts.Edit(c.Request.Context(), middleware.CurrentUserID(c), id, f, imagePath)
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, service.ErrNotAuthor):
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
	case errors.Is(err, service.ErrUnknownGroup):
		response.FormErrors(c, map[string]string{"group": "группа не существует"})
	case err != nil:
		response.InternalError(c, err)
	default:
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
	}
}

// DeletePost 删除帖子（仅作者）
// @Summary 删除帖子
// @Tags posts
// @Param id path int true "帖子 ID"
// @Success 302
// @Router /posts/{id}/delete/ [post]
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		response.NotFound(c, "post not found")
		return
	}
	err := h.posts.Delete(c.Request.Context(), middleware.CurrentUserID(c), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, service.ErrNotAuthor):
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
	case err != nil:
		response.InternalError(c, err)
	default:
		c.Redirect(http.StatusFound, "/profile/"+middleware.CurrentUsername(c)+"/")
	}
}

// bindPostForm binds text/group, validates, and stores the optional
// image part. Replies with field errors itself when ok is false.
func (h *Handler) bindPostForm(c *gin.Context) (form.PostForm, string, bool) {
	var f form.PostForm
	if err := c.ShouldBind(&f); err != nil {
		response.BadRequest(c, err.Error())
		return f, "", false
	}
	if fieldErrs := f.Validate(); fieldErrs != nil {
		response.FormErrors(c, fieldErrs)
		return f, "", false
	}
	imagePath := ""
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		path, err := h.media.SavePost(fh)
		if err != nil {
			if errors.Is(err, media.ErrNotImage) {
				response.FormErrors(c, map[string]string{"image": "загрузите корректное изображение"})
			} else {
				response.InternalError(c, err)
			}
			return f, "", false
		}
		imagePath = path
	}
	return f, imagePath, true
}
