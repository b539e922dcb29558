package repository

import (
	"context"
	"errors"
	"fmt"

	"recipebook/models"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create 建立使用者，email 重複時回傳 ErrDuplicateEmail
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	const op = "repository.UserStore.Create"

	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, ErrDuplicateEmail)
	}
	if err != nil {
		return fmt.Errorf("%s: failed to create user: %w", op, err)
	}
	return nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.find(ctx, "email = ?", email)
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return s.find(ctx, "id = ?", id)
}

func (s *UserStore) find(ctx context.Context, query string, arg any) (*models.User, error) {
	const op = "repository.UserStore.find"

	var user models.User
	err := s.db.WithContext(ctx).Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query user: %w", op, err)
	}
	return &user, nil
}
