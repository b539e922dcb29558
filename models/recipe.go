package models

import (
	"time"

	"gorm.io/datatypes"
)

// Recipe 代表使用者建立的食譜
// 包含食譜內容、提醒時間與完成狀態
type Recipe struct {
	ID        uint                           `gorm:"primaryKey" json:"id"`
	OwnerID   uint                           `gorm:"not null;index" json:"owner_id"`
	Info      datatypes.JSONType[RecipeInfo] `gorm:"not null" json:"info"`
	Reminder  *time.Time                     `json:"reminder"`
	IsDone    bool                           `gorm:"not null;default:false" json:"is_done"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`

	// 外鍵關聯
	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Recipe) GetID() uint      { return r.ID }
func (r *Recipe) GetOwnerID() uint { return r.OwnerID }

func (r *Recipe) GetInfo() RecipeInfo { return r.Info.Data() }

func (r *Recipe) SetInfo(info RecipeInfo) {
	r.Info = datatypes.NewJSONType(info)
}
