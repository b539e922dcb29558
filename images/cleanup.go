package images

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

type sweeperOptions struct {
	logger *slog.Logger
	prefix string
}

type SweeperOption func(*sweeperOptions)

func WithSweeperLogger(logger *slog.Logger) SweeperOption {
	return func(o *sweeperOptions) {
		o.logger = logger
	}
}

func WithSweeperPrefix(prefix string) SweeperOption {
	return func(o *sweeperOptions) {
		o.prefix = prefix
	}
}

// Sweeper 刪除 bucket 中沒有任何資料列引用的圖片
type Sweeper struct {
	store   ObjectStore
	refs    []ImageRefLister
	options sweeperOptions
}

// NewSweeper 建立 Sweeper，refs 中每個來源引用的 key 都會被保留
func NewSweeper(store ObjectStore, refs []ImageRefLister, opts ...SweeperOption) *Sweeper {
	options := sweeperOptions{
		logger: slog.Default(),
		prefix: Prefix,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Sweeper{
		store:   store,
		refs:    refs,
		options: options,
	}
}

// Run 執行一次清理，回傳 false 代表因上游錯誤中止
// 錯誤只會記錄在 log，不會回傳給呼叫端
func (s *Sweeper) Run(ctx context.Context) bool {
	const op = "images.Sweeper.Run"
	logger := s.options.logger.With(slog.String("op", op))

	// 收集資料庫中所有被引用的 key
	referenced := make(map[string]struct{})
	for _, lister := range s.refs {
		keys, err := lister.ListImageRefs(ctx)
		if err != nil {
			logger.Error("Clean up failed! An error occurred when loading image references", slog.Any("error", err))
			return false
		}
		for _, key := range keys {
			if key != "" {
				referenced[key] = struct{}{}
			}
		}
	}

	stored, err := s.store.List(ctx, s.options.prefix)
	if err != nil {
		logger.Error("Clean up failed! An error occurred when listing files", slog.Any("error", err))
		return false
	}

	// 以 / 結尾的是主控台建立的資料夾標記，不是圖片
	toDelete := lo.Filter(stored, func(key string, _ int) bool {
		if strings.HasSuffix(key, "/") {
			return false
		}
		_, ok := referenced[key]
		return !ok
	})
	if len(toDelete) == 0 {
		logger.Info("No unused images to delete")
		return true
	}

	if err := s.store.Remove(ctx, toDelete); err != nil {
		logger.Error("Clean up failed! An error occurred when removing files",
			slog.Int("count", len(toDelete)),
			slog.Any("error", err))
		return false
	}

	logger.Info("Removed unused images", slog.Int("count", len(toDelete)))
	return true
}
