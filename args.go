package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"recipebook/api"
	"recipebook/images"
	"recipebook/repository"
)

const envPrefix = "RECIPEBOOK"

func BindFlags(flags *pflag.FlagSet) {
	// server config
	flags.String("server-url", "0.0.0.0:8080", "")
	flags.StringSlice("cors-allow-origins", nil, "")

	// log config
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-format", "text", "text or json")
	flags.String("log-file", "", "rotating log file, stdout only when empty")
	flags.Int("log-max-size", 100, "megabytes")
	flags.Int("log-max-backups", 3, "")
	flags.Int("log-max-age", 28, "days")

	// db config
	flags.String("db-driver", repository.DriverPostgres, "postgres or sqlite")
	flags.String("db-url", "", "")
	flags.String("db-log-level", "warn", "silent, error, warn or info")
	flags.Bool("db-auto-migrate", false, "")

	// s3 config
	flags.String("storage-driver", "s3", "s3 or minio")
	flags.String("s3-endpoint", "", "")
	flags.String("s3-region", "", "")
	flags.String("s3-bucket", "", "")
	flags.String("s3-access-key-id", "", "")
	flags.String("s3-secret-access-key", "", "")
	flags.Bool("s3-use-path-style", false, "")
	flags.Bool("s3-secure", true, "")

	// redis config
	flags.String("redis-addr", "", "cleanup runs without a distributed lock when empty")
	flags.String("redis-password", "", "")
	flags.Int("redis-db", 0, "")
	flags.String("redis-key-prefix", "recipebook:", "")

	// auth config
	flags.String("jwt-secret", "", "")
	flags.String("jwt-issuer", "recipebook", "")
	flags.Duration("jwt-expire", 24*time.Hour, "")

	// image config
	flags.String("image-placeholder-url", api.DefaultPlaceholderURL, "")
	flags.Duration("image-url-expiry", images.DefaultURLExpiry, "")
	flags.String("cleanup-schedule", images.DefaultCleanupSchedule, "cron expression, empty disables the schedule")
	flags.String("cleanup-timezone", "Asia/Ho_Chi_Minh", "")
}

// ParseArgs 讀取 flag 與 RECIPEBOOK_ 開頭的環境變數
func ParseArgs(flags *pflag.FlagSet) (Args, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Args{}, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// initial arguments
	return Args{
		ServerURL: v.GetString("server-url"),
		Log: LogConfig{
			Level:      v.GetString("log-level"),
			Format:     v.GetString("log-format"),
			File:       v.GetString("log-file"),
			MaxSize:    v.GetInt("log-max-size"),
			MaxBackups: v.GetInt("log-max-backups"),
			MaxAge:     v.GetInt("log-max-age"),
		},
		ServerConfig: api.ServerConfig{
			DB: api.DBConfig{
				Driver:      v.GetString("db-driver"),
				URL:         v.GetString("db-url"),
				LogLevel:    v.GetString("db-log-level"),
				AutoMigrate: v.GetBool("db-auto-migrate"),
			},
			S3: api.S3Config{
				Driver:          v.GetString("storage-driver"),
				Endpoint:        v.GetString("s3-endpoint"),
				Region:          v.GetString("s3-region"),
				Bucket:          v.GetString("s3-bucket"),
				AccessKeyID:     v.GetString("s3-access-key-id"),
				SecretAccessKey: v.GetString("s3-secret-access-key"),
				UsePathStyle:    v.GetBool("s3-use-path-style"),
				Secure:          v.GetBool("s3-secure"),
			},
			Redis: api.RedisConfig{
				Addr:      v.GetString("redis-addr"),
				Password:  v.GetString("redis-password"),
				DB:        v.GetInt("redis-db"),
				KeyPrefix: v.GetString("redis-key-prefix"),
			},
			Auth: api.AuthConfig{
				Secret: v.GetString("jwt-secret"),
				Issuer: v.GetString("jwt-issuer"),
				Expire: v.GetDuration("jwt-expire"),
			},
			Image: api.ImageConfig{
				PlaceholderURL: v.GetString("image-placeholder-url"),
				URLExpiry:      v.GetDuration("image-url-expiry"),
			},
			Cleanup: api.CleanupConfig{
				Schedule: v.GetString("cleanup-schedule"),
				Timezone: v.GetString("cleanup-timezone"),
			},
			CORS: api.CORSConfig{
				AllowOrigins: v.GetStringSlice("cors-allow-origins"),
			},
		},
	}, nil
}

type Args struct {
	ServerURL    string
	Log          LogConfig
	ServerConfig api.ServerConfig
}

// Validate 檢查必要的設定，migrate 只需要資料庫設定
func (args Args) Validate(needStorage bool) error {
	var errs []error
	if args.ServerConfig.DB.URL == "" {
		errs = append(errs, errors.New("db-url is required"))
	}
	if needStorage {
		if args.ServerConfig.S3.Bucket == "" {
			errs = append(errs, errors.New("s3-bucket is required"))
		}
		if args.ServerConfig.Auth.Secret == "" {
			errs = append(errs, errors.New("jwt-secret is required"))
		}
		if args.ServerURL == "" {
			errs = append(errs, errors.New("server-url is required"))
		}
	}
	return errors.Join(errs...)
}
