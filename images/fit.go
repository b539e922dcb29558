package images

import "math"

// FitInside 計算等比例縮放到 maxWidth x maxHeight 以內的尺寸
// 原圖已經在範圍內時維持原尺寸，不會放大
func FitInside(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return width, height
	}
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	ratio := math.Min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))
	fitWidth := int(math.Round(float64(width) * ratio))
	fitHeight := int(math.Round(float64(height) * ratio))
	return max(1, min(fitWidth, maxWidth)), max(1, min(fitHeight, maxHeight))
}

// UprightSize 回傳依 EXIF orientation 轉正後的尺寸
// orientation 5 到 8 代表影像旋轉了 90 度，寬高需要對調
func UprightSize(width, height, orientation int) (int, int) {
	if orientation >= 5 && orientation <= 8 {
		return height, width
	}
	return width, height
}
