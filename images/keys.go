package images

import (
	"fmt"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Prefix 是所有圖片 key 的共同前綴，清理排程只處理此前綴底下的物件
	Prefix = "images/"

	imageIDAlphabet = "1234567890abcdefghijklmnopqrstuvwxyz"
	imageIDLength   = 8
)

// NewImageID 產生 8 碼小寫英數字的隨機 id，不檢查是否與既有 key 重複
func NewImageID() (string, error) {
	return gonanoid.Generate(imageIDAlphabet, imageIDLength)
}

// ObjectKey 組成 images/{id}-{slug}-{imageID}.{ext}
func ObjectKey(id uint, name, imageID, ext string) string {
	return fmt.Sprintf("%s%d-%s-%s.%s", Prefix, id, slug.Make(name), imageID, ext)
}
