package images

import (
	"errors"
	"fmt"
)

var (
	ErrNoImage      = errors.New("no image uploaded")
	ErrInvalidImage = errors.New("invalid image")
)

// UploadError 表示物件儲存寫入失敗，Message 原樣保留儲存端的錯誤訊息
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: %s", e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
