package upload

import (
	"bytes"
	"net/http"
	"regexp"
)

var imageMIMEPattern = regexp.MustCompile(`^image/\w+$`)

// AllowedImageTypes 是允許上傳的圖片類型
var AllowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/bmp":  {},
	"image/tiff": {},
	"image/webp": {},
	"image/avif": {},
	"image/heic": {},
}

// DetectImageType 依檔案內容判斷圖片類型，不信任客戶端提供的 Content-Type
func DetectImageType(data []byte) (string, bool) {
	mimeType := sniff(data)
	if !imageMIMEPattern.MatchString(mimeType) {
		return mimeType, false
	}
	_, ok := AllowedImageTypes[mimeType]
	return mimeType, ok
}

func sniff(data []byte) string {
	// http.DetectContentType 不認得 ISO BMFF 容器與 TIFF
	if len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp")) {
		switch string(data[8:12]) {
		case "avif", "avis":
			return "image/avif"
		case "heic", "heix", "mif1", "msf1":
			return "image/heic"
		}
	}
	if bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")) {
		return "image/tiff"
	}

	mimeType := http.DetectContentType(data)
	if i := bytes.IndexByte([]byte(mimeType), ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return mimeType
}
