package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube/internal/api/middleware"
	"github.com/yatube/yatube/internal/form"
	"github.com/yatube/yatube/internal/service"
	"github.com/yatube/yatube/pkg/response"
)

// AddComment 发表评论
// @Summary 发表评论
// @Tags comments
// @Param id path int true "帖子 ID"
// @Success 302
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id}/comment/ [post]
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		response.NotFound(c, "post not found")
		return
	}
	var f form.CommentForm
	if err := c.ShouldBind(&f); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if fieldErrs := f.Validate(); fieldErrs != nil {
		response.FormErrors(c, fieldErrs)
		return
	}
	_, err := h.posts.AddComment(c.Request.Context(), middleware.CurrentUserID(c), id, f)
	if errors.Is(err, service.ErrNotFound) {
		response.NotFound(c, "post not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", id))
}
