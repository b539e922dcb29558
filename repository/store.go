package repository

import (
	"context"
	"errors"
	"fmt"

	"recipebook/models"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Store 是 recipes 與 saved_recipes 共用的資料存取層
// 所有查詢都以 owner_id 限定範圍，只有 ListImageRefs 是全域掃描
type Store[T any, PT interface {
	*T
	models.InfoRecord
}] struct {
	db *gorm.DB
}

type (
	RecipeStore      = Store[models.Recipe, *models.Recipe]
	SavedRecipeStore = Store[models.SavedRecipe, *models.SavedRecipe]
)

func NewStore[T any, PT interface {
	*T
	models.InfoRecord
}](db *gorm.DB) *Store[T, PT] {
	return &Store[T, PT]{db: db}
}

func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return NewStore[models.Recipe](db)
}

func NewSavedRecipeStore(db *gorm.DB) *SavedRecipeStore {
	return NewStore[models.SavedRecipe](db)
}

// FindAll 回傳使用者擁有的所有資料列，依 id 排序
func (s *Store[T, PT]) FindAll(ctx context.Context, ownerID uint) ([]T, error) {
	const op = "repository.Store.FindAll"

	var records []T
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%s: failed to query records: %w", op, err)
	}
	return records, nil
}

// FindOwned 回傳指定 id 且屬於 ownerID 的資料列，不存在時回傳 ErrNotFound
func (s *Store[T, PT]) FindOwned(ctx context.Context, ownerID, id uint) (PT, error) {
	return findOwned[T, PT](s.db.WithContext(ctx), ownerID, id)
}

func (s *Store[T, PT]) Create(ctx context.Context, record PT) error {
	const op = "repository.Store.Create"

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("%s: failed to create record: %w", op, err)
	}
	return nil
}

// Mutate 在同一個交易中讀取資料列、套用 fn 並寫回
func (s *Store[T, PT]) Mutate(ctx context.Context, ownerID, id uint, fn func(PT) error) (PT, error) {
	const op = "repository.Store.Mutate"

	var record PT
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findOwned[T, PT](tx, ownerID, id)
		if err != nil {
			return err
		}
		if err := fn(found); err != nil {
			return err
		}
		if err := tx.Save(found).Error; err != nil {
			return fmt.Errorf("%s: failed to save record: %w", op, err)
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateInfo 將 patch 淺層合併進既有的 info 後保存
func (s *Store[T, PT]) UpdateInfo(ctx context.Context, ownerID, id uint, patch models.InfoPatch) (PT, error) {
	return s.Mutate(ctx, ownerID, id, func(record PT) error {
		record.SetInfo(record.GetInfo().Merge(patch))
		return nil
	})
}

// Delete 刪除資料列並回傳刪除前的內容，引用的圖片留給清理排程回收
func (s *Store[T, PT]) Delete(ctx context.Context, ownerID, id uint) (PT, error) {
	const op = "repository.Store.Delete"

	var record PT
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findOwned[T, PT](tx, ownerID, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(found).Error; err != nil {
			return fmt.Errorf("%s: failed to delete record: %w", op, err)
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListImageRefs 掃描所有使用者的資料列，回傳非空的 info.image
func (s *Store[T, PT]) ListImageRefs(ctx context.Context) ([]string, error) {
	const op = "repository.Store.ListImageRefs"

	var records []T
	if err := s.db.WithContext(ctx).Select("info").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%s: failed to query image refs: %w", op, err)
	}

	return lo.FilterMap(records, func(record T, _ int) (string, bool) {
		key := PT(&record).GetInfo().ImageKey()
		return key, key != ""
	}), nil
}

func findOwned[T any, PT interface {
	*T
	models.InfoRecord
}](db *gorm.DB, ownerID, id uint) (PT, error) {
	const op = "repository.findOwned"

	record := PT(new(T))
	err := db.Where("id = ? AND owner_id = ?", id, ownerID).First(record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query record: %w", op, err)
	}
	return record, nil
}
