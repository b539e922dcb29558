package models

// RecipeInfo 是食譜的半結構化內容，以 JSON 形式存放在 info 欄位
// 核心流程只解讀 Name 與 Image
type RecipeInfo struct {
	Name    string  `json:"name"`
	Content *string `json:"content,omitempty"`
	// Image 是物件儲存中的 key，格式為 images/<id>-<slug>-<randomId>.<ext>
	Image *string `json:"image,omitempty"`
}

// InfoPatch 描述對 RecipeInfo 的部分更新，nil 欄位代表維持原值
type InfoPatch struct {
	Name    *string
	Content *string
	Image   *string
}

// Merge 以淺層合併套用 patch 並回傳新的 RecipeInfo
// 只更新 name 或 content 時，既有的 image 一定會被保留
func (info RecipeInfo) Merge(patch InfoPatch) RecipeInfo {
	merged := info
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Content != nil {
		merged.Content = patch.Content
	}
	if patch.Image != nil {
		merged.Image = patch.Image
	}
	return merged
}

// ImageKey 回傳圖片 key，未設定時回傳空字串
func (info RecipeInfo) ImageKey() string {
	if info.Image == nil {
		return ""
	}
	return *info.Image
}

// InfoRecord 是擁有 info 欄位的資料列，Recipe 與 SavedRecipe 皆實作此介面
type InfoRecord interface {
	GetID() uint
	GetOwnerID() uint
	GetInfo() RecipeInfo
	SetInfo(info RecipeInfo)
}
