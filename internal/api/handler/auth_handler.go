package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube/internal/service"
	"github.com/yatube/yatube/pkg/response"
)

type signupRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Signup 注册
// @Summary 注册
// @Tags auth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/signup/ [post]
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, service.ErrUsernameTaken) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, newUserView(user))
}

// LoginForm 登录页：未认证访问受限路由会被重定向到这里，带 next 参数
// @Summary 登录页
// @Tags auth
// @Param next query string false "登录后的回跳路径"
// @Success 200 {object} response.Response
// @Router /auth/login/ [get]
func (h *Handler) LoginForm(c *gin.Context) {
	response.Success(c, gin.H{"next": c.Query("next")})
}

// Login 登录，签发 token 并写入 auth cookie
// @Summary 登录
// @Tags auth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/login/ [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.SetCookie("auth", token, 0, "/", "", false, true)
	response.Success(c, gin.H{"token": token})
}
