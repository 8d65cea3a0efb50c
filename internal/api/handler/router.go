package handler

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/yatube/yatube/internal/api/middleware"
	"github.com/yatube/yatube/internal/config"
	"github.com/yatube/yatube/pkg/logger"
	"github.com/yatube/yatube/pkg/response"
)

// NewRouter mounts every route on a fresh engine.
func NewRouter(cfg *config.Config, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(accessLog())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(otelgin.Middleware("yatube"))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	r.Use(middleware.Identify(cfg.Auth.JWTSecret))

	login := middleware.LoginRequired(cfg.Auth.JWTSecret)

	r.GET("/", h.cache.Middleware(), h.Index)
	r.GET("/group/:slug/", h.GroupFeed)
	r.GET("/profile/:username/", h.Profile)
	r.GET("/posts/:id/", h.PostDetail)

	r.GET("/create/", login, h.CreateForm)
	r.POST("/create/", login, h.CreatePost)
	r.GET("/posts/:id/edit/", login, h.EditForm)
	r.POST("/posts/:id/edit/", login, h.EditPost)
	r.POST("/posts/:id/delete/", login, h.DeletePost)
	r.POST("/posts/:id/comment/", login, h.AddComment)
	r.GET("/follow/", login, h.FollowFeed)
	r.POST("/profile/:username/follow/", login, h.ProfileFollow)
	r.POST("/profile/:username/unfollow/", login, h.ProfileUnfollow)

	r.GET("/auth/login/", h.LoginForm)
	r.POST("/auth/login/", h.Login)
	r.POST("/auth/signup/", h.Signup)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "page not found")
	})
	return r
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
