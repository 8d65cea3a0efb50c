package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yatube/yatube/internal/api/handler"
	"github.com/yatube/yatube/internal/cache"
	"github.com/yatube/yatube/internal/config"
	"github.com/yatube/yatube/internal/media"
	"github.com/yatube/yatube/internal/model"
	"github.com/yatube/yatube/internal/repository"
	"github.com/yatube/yatube/internal/service"
	"github.com/yatube/yatube/pkg/logger"
	"github.com/yatube/yatube/pkg/tracing"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	shutdownTracing, err := tracing.Init(ctx, "yatube", cfg.Tracing.Endpoint)
	if err != nil {
		logger.Warn("tracing init failed", zap.Error(err))
	} else {
		defer shutdownTracing(context.Background())
	}

	db, err := openDB(cfg)
	if err != nil {
		logger.Error("open database", zap.Error(err))
		return
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	); err != nil {
		logger.Error("migrate", zap.Error(err))
		return
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	defer rdb.Close()

	mediaStore, err := media.NewStore(cfg.Media.Root)
	if err != nil {
		logger.Error("media store", zap.Error(err))
		return
	}

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	posts := service.NewPostService(postRepo, groupRepo, userRepo, commentRepo, cfg.Feed.PageSize)
	rels := service.NewRelationshipService(followRepo, userRepo)
	auth := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	pageCache := cache.NewPageCache(rdb, cfg.Cache.TTL, cfg.Cache.Prefix)

	h := handler.New(posts, rels, auth, mediaStore, pageCache)
	router := handler.NewRouter(cfg, h)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{})
	}
}
