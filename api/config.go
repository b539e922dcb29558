package api

import "time"

type ServerConfig struct {
	DB      DBConfig
	S3      S3Config
	Redis   RedisConfig
	Auth    AuthConfig
	Image   ImageConfig
	Cleanup CleanupConfig
	CORS    CORSConfig
}

type DBConfig struct {
	// Driver 為 postgres 或 sqlite
	Driver      string
	URL         string
	LogLevel    string
	AutoMigrate bool
}

type S3Config struct {
	// Driver 為 s3 或 minio
	Driver          string
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	Secure          bool
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type AuthConfig struct {
	Secret string
	Issuer string
	Expire time.Duration
}

type ImageConfig struct {
	// PlaceholderURL 是沒有圖片或簽章失敗時回傳的網址
	PlaceholderURL string
	URLExpiry      time.Duration
}

type CleanupConfig struct {
	// Schedule 為空字串時不啟動排程
	Schedule string
	Timezone string
}

type CORSConfig struct {
	AllowOrigins []string
}
