package repository

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipebook/models"
)

// SeedUser 是預設建立的帳號，Password 為明文
type SeedUser struct {
	Name     string
	Email    string
	Password string
}

var DemoUsers = []SeedUser{
	{Name: "Demo", Email: "demo@weather.meals", Password: "123456"},
}

// Seed 建立 users 中尚未存在的帳號，email 已存在的略過
// 回傳實際新增的筆數
func Seed(ctx context.Context, db *gorm.DB, users []SeedUser) (int64, error) {
	const op = "repository.Seed"

	if len(users) == 0 {
		return 0, nil
	}

	records := make([]models.User, 0, len(users))
	for _, user := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, fmt.Errorf("%s: failed to hash password of %s: %w", op, user.Email, err)
		}
		records = append(records, models.User{
			Name:         user.Name,
			Email:        user.Email,
			PasswordHash: string(hash),
		})
	}

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&records)
	if result.Error != nil {
		return 0, fmt.Errorf("%s: failed to insert users: %w", op, result.Error)
	}
	return result.RowsAffected, nil
}
