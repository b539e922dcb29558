package images

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recipebook/models"
)

const (
	MaxWidth   = 1280
	MaxHeight  = 720
	Quality    = 70
	FormatAVIF = "avif"

	DefaultURLExpiry = time.Hour
)

type managerOptions struct {
	logger    *slog.Logger
	newID     func() (string, error)
	transcode TranscodeOptions
}

type ManagerOption func(*managerOptions)

func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(o *managerOptions) {
		o.logger = logger
	}
}

// WithManagerIDGenerator 替換隨機 id 的產生方式
func WithManagerIDGenerator(newID func() (string, error)) ManagerOption {
	return func(o *managerOptions) {
		o.newID = newID
	}
}

func WithManagerTranscodeOptions(opts TranscodeOptions) ManagerOption {
	return func(o *managerOptions) {
		o.transcode = opts
	}
}

// Manager 負責單一資料表的圖片上傳與簽章網址
type Manager[T models.InfoRecord] struct {
	records    RecordStore[T]
	store      ObjectStore
	transcoder Transcoder
	options    managerOptions
}

func NewManager[T models.InfoRecord](records RecordStore[T], store ObjectStore, transcoder Transcoder, opts ...ManagerOption) *Manager[T] {
	options := managerOptions{
		logger: slog.Default(),
		newID:  NewImageID,
		transcode: TranscodeOptions{
			MaxWidth:  MaxWidth,
			MaxHeight: MaxHeight,
			Format:    FormatAVIF,
			Quality:   Quality,
		},
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Manager[T]{
		records:    records,
		store:      store,
		transcoder: transcoder,
		options:    options,
	}
}

// Upload 轉檔並上傳圖片，成功後將新的 key 合併進資料列的 info.image
func (m *Manager[T]) Upload(ctx context.Context, ownerID, id uint, image []byte) (T, error) {
	const op = "images.Manager.Upload"
	var zero T

	// 沒有圖片時不做任何 I/O
	if len(image) == 0 {
		return zero, ErrNoImage
	}

	// 檢查資料列是否存在且屬於使用者
	record, err := m.records.FindOwned(ctx, ownerID, id)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	imageID, err := m.options.newID()
	if err != nil {
		return zero, fmt.Errorf("%s: failed to generate image id: %w", op, err)
	}

	// 縮放並重新編碼
	encoded, err := m.transcoder.Transcode(image, m.options.transcode)
	if err != nil {
		return zero, fmt.Errorf("%s: %w: %w", op, ErrInvalidImage, err)
	}

	key := ObjectKey(id, record.GetInfo().Name, imageID, encoded.Extension)
	storedKey, err := m.store.Upload(ctx, key, encoded.Data, UploadOptions{
		ContentType: encoded.ContentType,
		Overwrite:   true,
	})
	if err != nil {
		return zero, &UploadError{Message: err.Error(), Err: err}
	}

	// 只修改 image，name 與 content 由合併保留
	updated, err := m.records.UpdateInfo(ctx, ownerID, id, models.InfoPatch{Image: &storedKey})
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	m.options.logger.Debug("image uploaded",
		slog.String("op", op),
		slog.Uint64("id", uint64(id)),
		slog.String("key", storedKey))
	return updated, nil
}

// SignedURL 回傳圖片的簽章網址
// 資料列不存在時回傳錯誤；沒有圖片或儲存端出錯時回傳 ok=false
func (m *Manager[T]) SignedURL(ctx context.Context, ownerID, id uint, expiry time.Duration) (string, bool, error) {
	const op = "images.Manager.SignedURL"

	record, err := m.records.FindOwned(ctx, ownerID, id)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	key := record.GetInfo().ImageKey()
	if key == "" {
		return "", false, nil
	}

	if expiry <= 0 {
		expiry = DefaultURLExpiry
	}

	url, err := m.store.SignedURL(ctx, key, expiry)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			m.options.logger.Debug("failed to sign image url",
				slog.String("op", op),
				slog.String("key", key),
				slog.Any("error", err))
		}
		return "", false, nil
	}
	return url, true, nil
}
