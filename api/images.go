package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"recipebook/adapters/upload"
)

// readImage 讀取 multipart 的 image 欄位
// 沒有檔案時回傳 nil，交由圖片管理回報 no image uploaded
func readImage(reader *multipart.Reader) ([]byte, error) {
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, wrapMultipartError(err)
		}
		if part.FormName() != "image" || part.FileName() == "" {
			part.Close()
			continue
		}
		defer part.Close()

		// 限制圖片
		// 	1. 不超過 5MB
		// 	2. 依內容判斷的 MIME 類型為允許的圖片格式
		data, err := upload.ReadAll(part, upload.MaxImageSize)
		if err != nil {
			return nil, wrapMultipartError(err)
		}
		if len(data) == 0 {
			return nil, nil
		}
		if mimeType, ok := upload.DetectImageType(data); !ok {
			return nil, &invalidImageTypeError{mimeType: mimeType}
		}
		return data, nil
	}
}

// 超過大小限制的錯誤保留原樣，其餘視為格式錯誤
func wrapMultipartError(err error) error {
	var limitErr *upload.ReachLimitError
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &limitErr) || errors.As(err, &maxBytesErr) {
		return err
	}
	return fmt.Errorf("%w: %w", errMalformedMultipart, err)
}

// imageRequestError 回傳 readImage 失敗時給使用者的訊息
func imageRequestError(err error) string {
	if message, ok := uploadErrorMessage(err); ok {
		return message
	}
	return "Invalid multipart form"
}
