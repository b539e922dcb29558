package models

import (
	"time"

	"gorm.io/datatypes"
)

// SavedRecipe 代表使用者收藏的食譜，結構與 Recipe 相同但沒有提醒與完成狀態
type SavedRecipe struct {
	ID        uint                           `gorm:"primaryKey" json:"id"`
	OwnerID   uint                           `gorm:"not null;index" json:"owner_id"`
	Info      datatypes.JSONType[RecipeInfo] `gorm:"not null" json:"info"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`

	// 外鍵關聯
	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *SavedRecipe) GetID() uint      { return r.ID }
func (r *SavedRecipe) GetOwnerID() uint { return r.OwnerID }

func (r *SavedRecipe) GetInfo() RecipeInfo { return r.Info.Data() }

func (r *SavedRecipe) SetInfo(info RecipeInfo) {
	r.Info = datatypes.NewJSONType(info)
}
