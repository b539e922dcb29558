package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	redisAdapter "recipebook/adapters/redis"
	"recipebook/api/token"
	"recipebook/images"
	"recipebook/models"
	"recipebook/repository"
)

const DefaultPlaceholderURL = "https://placehold.co/300x300"

// Dependencies 是由呼叫端建立並注入的外部資源
type Dependencies struct {
	DB          *gorm.DB
	ObjectStore images.ObjectStore
	Transcoder  images.Transcoder
	// Redis 為 nil 時清理排程不使用分散式鎖
	Redis redis.UniversalClient
}

type ServerImpl struct {
	users        *repository.UserStore
	recipes      *repository.RecipeStore
	savedRecipes *repository.SavedRecipeStore
	recipeImages *images.Manager[*models.Recipe]
	savedImages  *images.Manager[*models.SavedRecipe]
	sweeper      *images.Sweeper
	scheduler    *images.Scheduler
	tokens       *token.Issuer
	htmlChecker  *bluemonday.Policy

	config ServerConfig
}

func NewServer(config ServerConfig, deps Dependencies) (*ServerImpl, error) {
	const op = "NewServer"

	if deps.DB == nil || deps.ObjectStore == nil || deps.Transcoder == nil {
		return nil, fmt.Errorf("[%s] Fail to create server, err=missing dependencies", op)
	}
	if config.Auth.Secret == "" {
		return nil, fmt.Errorf("[%s] Fail to create server, err=jwt secret is required", op)
	}
	if config.Auth.Expire <= 0 {
		config.Auth.Expire = 24 * time.Hour
	}
	if config.Image.PlaceholderURL == "" {
		config.Image.PlaceholderURL = DefaultPlaceholderURL
	}
	if config.Image.URLExpiry <= 0 {
		config.Image.URLExpiry = images.DefaultURLExpiry
	}

	// 初始化資料存取層
	recipes := repository.NewRecipeStore(deps.DB)
	savedRecipes := repository.NewSavedRecipeStore(deps.DB)

	// 初始化圖片管理
	logger := slog.Default()
	sweeper := images.NewSweeper(
		deps.ObjectStore,
		[]images.ImageRefLister{recipes, savedRecipes},
		images.WithSweeperLogger(logger.With(slog.String("component", "cleanup"))),
	)

	// 初始化清理排程
	var scheduler *images.Scheduler
	if config.Cleanup.Schedule != "" {
		location := time.UTC
		if config.Cleanup.Timezone != "" {
			loc, err := time.LoadLocation(config.Cleanup.Timezone)
			if err != nil {
				return nil, fmt.Errorf("[%s] Fail to load cleanup timezone, err=%w", op, err)
			}
			location = loc
		}

		opts := []images.SchedulerOption{
			images.WithSchedulerLogger(logger.With(slog.String("component", "scheduler"))),
			images.WithSchedulerLocation(location),
		}
		if deps.Redis != nil {
			lockKey := redisAdapter.CleanupLockKey(config.Redis.KeyPrefix)
			opts = append(opts, images.WithSchedulerMutex(func() images.Mutex {
				return redisAdapter.NewJobMutex(deps.Redis, lockKey, redisAdapter.WithJobMutexMaxAttempts(1))
			}))
		}

		s, err := images.NewScheduler(sweeper, config.Cleanup.Schedule, opts...)
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to create cleanup scheduler, err=%w", op, err)
		}
		scheduler = s
	}

	return &ServerImpl{
		users:        repository.NewUserStore(deps.DB),
		recipes:      recipes,
		savedRecipes: savedRecipes,
		recipeImages: images.NewManager[*models.Recipe](recipes, deps.ObjectStore, deps.Transcoder),
		savedImages:  images.NewManager[*models.SavedRecipe](savedRecipes, deps.ObjectStore, deps.Transcoder),
		sweeper:      sweeper,
		scheduler:    scheduler,
		tokens:       token.NewIssuer(config.Auth.Secret, config.Auth.Issuer, config.Auth.Expire),
		htmlChecker:  bluemonday.UGCPolicy(),
		config:       config,
	}, nil
}

// Start 啟動背景的清理排程
func (impl *ServerImpl) Start() {
	if impl.scheduler != nil {
		impl.scheduler.Start()
	}
}

func (impl *ServerImpl) Close() {
	if impl.scheduler != nil {
		impl.scheduler.Close()
	}
}

// Sweep 立即執行一次圖片清理，有設定排程時會沿用排程的鎖
func (impl *ServerImpl) Sweep(ctx context.Context) bool {
	if impl.scheduler != nil {
		return impl.scheduler.RunOnce(ctx)
	}
	return impl.sweeper.Run(ctx)
}
