package upload

import "fmt"

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB"}

// FormatBytes 以 1024 為進位顯示位元組數，例如 2048 顯示為 2.00 KB
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d bytes", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < len(byteUnits)-1; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %s", float64(n)/float64(div), byteUnits[exp])
}
