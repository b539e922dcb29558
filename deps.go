package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	bimgAdapter "recipebook/adapters/bimg"
	minioAdapter "recipebook/adapters/minio"
	s3Adapter "recipebook/adapters/s3"
	"recipebook/api"
	"recipebook/images"
	"recipebook/repository"
)

func OpenDB(config api.DBConfig) (*gorm.DB, error) {
	const op = "OpenDB"

	db, err := repository.Open(config.Driver, config.URL, repository.ParseLogLevel(config.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to connect to database, err=%w", op, err)
	}
	return db, nil
}

// NewObjectStore 依照 storage-driver 建立物件儲存
func NewObjectStore(ctx context.Context, config api.S3Config) (images.ObjectStore, error) {
	const op = "NewObjectStore"

	switch config.Driver {
	case "minio":
		operator, err := minioAdapter.NewOperator(minioAdapter.Config{
			Endpoint:        config.Endpoint,
			Region:          config.Region,
			AccessKeyID:     config.AccessKeyID,
			SecretAccessKey: config.SecretAccessKey,
			Secure:          config.Secure,
		}, config.Bucket)
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to create minio operator, err=%w", op, err)
		}
		return operator, nil
	case "s3", "":
		client, err := s3Adapter.NewClient(ctx, s3Adapter.ClientConfig{
			Endpoint:        config.Endpoint,
			Region:          config.Region,
			AccessKeyID:     config.AccessKeyID,
			SecretAccessKey: config.SecretAccessKey,
			UsePathStyle:    config.UsePathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to create s3 client, err=%w", op, err)
		}
		operator, err := s3Adapter.NewS3Operator(client, config.Bucket)
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to create s3 operator, err=%w", op, err)
		}
		return operator, nil
	default:
		return nil, fmt.Errorf("[%s] Fail to create object store, err=unsupported driver %q", op, config.Driver)
	}
}

// NewRedisClient 在沒有設定位址時回傳 nil
func NewRedisClient(ctx context.Context, config api.RedisConfig) (*redis.Client, error) {
	const op = "NewRedisClient"

	if config.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[%s] Fail to ping redis, err=%w", op, err)
	}
	return client, nil
}

// BuildDependencies 建立伺服器需要的外部資源，回傳的 cleanup 會關閉所有連線
func BuildDependencies(ctx context.Context, config api.ServerConfig) (api.Dependencies, func(), error) {
	const op = "BuildDependencies"

	db, err := OpenDB(config.DB)
	if err != nil {
		return api.Dependencies{}, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if config.DB.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			closeDB()
			return api.Dependencies{}, nil, fmt.Errorf("[%s] Fail to migrate database, err=%w", op, err)
		}
	}

	store, err := NewObjectStore(ctx, config.S3)
	if err != nil {
		closeDB()
		return api.Dependencies{}, nil, err
	}

	redisClient, err := NewRedisClient(ctx, config.Redis)
	if err != nil {
		closeDB()
		return api.Dependencies{}, nil, err
	}

	deps := api.Dependencies{
		DB:          db,
		ObjectStore: store,
		Transcoder:  bimgAdapter.NewTranscoder(),
	}
	if redisClient != nil {
		deps.Redis = redisClient
	} else {
		slog.Info("redis is not configured, image cleanup runs without a distributed lock")
	}

	return deps, func() {
		if redisClient != nil {
			redisClient.Close()
		}
		closeDB()
	}, nil
}
