package repository

import (
	"errors"
	"fmt"

	"recipebook/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Open 依照 driver 建立資料庫連線
// sqlite 只允許單一連線，讓 :memory: 資料庫在整個連線池中保持一致
func Open(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	const op = "repository.Open"

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres, "":
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%s: unsupported driver %q", op, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to get sql.DB: %w", op, err)
		}
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("%s: failed to enable foreign keys: %w", op, err)
		}
	}

	return db, nil
}

// Migrate 建立或更新 users、recipes、saved_recipes 資料表
func Migrate(db *gorm.DB) error {
	const op = "repository.Migrate"

	if err := db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.SavedRecipe{}); err != nil {
		return fmt.Errorf("%s: failed to migrate: %w", op, err)
	}
	return nil
}

// ParseLogLevel 將設定字串轉換為 gorm 的 log level，無法辨識時回傳 Warn
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
