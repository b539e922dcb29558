package images

//go:generate mockgen -package=images -destination=mock.go -source=interfaces.go

import (
	"context"
	"time"

	"recipebook/models"
)

type UploadOptions struct {
	ContentType string
	// Overwrite 為 false 時，key 已存在會回傳錯誤
	Overwrite bool
}

// ObjectStore 是圖片所在的 bucket
type ObjectStore interface {
	// Upload 寫入物件並回傳實際的 key
	Upload(ctx context.Context, key string, body []byte, opts UploadOptions) (string, error)
	// SignedURL 產生有時效的公開下載網址，key 不存在時回傳錯誤
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// List 回傳 prefix 底下所有物件的完整 key
	List(ctx context.Context, prefix string) ([]string, error)
	// Remove 一次刪除多個物件
	Remove(ctx context.Context, keys []string) error
}

type TranscodeOptions struct {
	MaxWidth  int
	MaxHeight int
	Format    string
	Quality   int
}

// Encoded 是轉檔後的圖片
type Encoded struct {
	Data        []byte
	ContentType string
	Extension   string
}

type Transcoder interface {
	Transcode(data []byte, opts TranscodeOptions) (Encoded, error)
}

// RecordStore 讀寫擁有 info 欄位的資料列
type RecordStore[T models.InfoRecord] interface {
	FindOwned(ctx context.Context, ownerID, id uint) (T, error)
	UpdateInfo(ctx context.Context, ownerID, id uint, patch models.InfoPatch) (T, error)
}

// ImageRefLister 回傳資料庫中所有被引用的圖片 key
type ImageRefLister interface {
	ListImageRefs(ctx context.Context) ([]string, error)
}

// Mutex 是跨程序的排他鎖，Lock 成功時回傳的 context 會在失去鎖時被取消
type Mutex interface {
	Lock(ctx context.Context) (context.Context, error)
	Unlock() (bool, error)
}
