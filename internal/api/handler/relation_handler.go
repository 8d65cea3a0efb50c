package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube/internal/api/middleware"
	"github.com/yatube/yatube/internal/service"
	"github.com/yatube/yatube/pkg/response"
)

// FollowFeed 关注流：已关注作者的帖子 + 作者列表
// @Summary 关注流
// @Tags relations
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Router /follow/ [get]
func (h *Handler) FollowFeed(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	page, err := h.posts.FollowFeed(c.Request.Context(), userID, pageNumber(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	authors, err := h.rels.Followings(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page_obj": newPageView(page), "authors": newUserViews(authors)})
}

// ProfileFollow 关注作者；幂等，自关注静默忽略，完成后跳回主页
// @Summary 关注作者
// @Tags relations
// @Param username path string true "作者用户名"
// @Success 302
// @Failure 404 {object} response.Response
// @Router /profile/{username}/follow/ [post]
func (h *Handler) ProfileFollow(c *gin.Context) {
	username := c.Param("username")
	err := h.rels.Follow(c.Request.Context(), middleware.CurrentUserID(c), username)
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "profile not found")
	case errors.Is(err, service.ErrFollowSelf):
		// 不建边，但照常跳回
		c.Redirect(http.StatusFound, "/profile/"+username+"/")
	case err != nil:
		response.InternalError(c, err)
	default:
		c.Redirect(http.StatusFound, "/profile/"+username+"/")
	}
}

// ProfileUnfollow 取消关注；边不存在时为 no-op
// @Summary 取消关注
// @Tags relations
// @Param username path string true "作者用户名"
// @Success 302
// @Failure 404 {object} response.Response
// @Router /profile/{username}/unfollow/ [post]
func (h *Handler) ProfileUnfollow(c *gin.Context) {
	username := c.Param("username")
	err := h.rels.Unfollow(c.Request.Context(), middleware.CurrentUserID(c), username)
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "profile not found")
	case err != nil:
		response.InternalError(c, err)
	default:
		c.Redirect(http.StatusFound, "/profile/"+username+"/")
	}
}
