package upload

import (
	"errors"
	"fmt"
	"io"
)

// MaxImageSize 是單張圖片上傳的大小上限
const MaxImageSize int64 = 5_000_000

type ReachLimitError struct {
	MaxBytes int64
}

func (e *ReachLimitError) Error() string {
	return fmt.Sprintf("reach limit of %s", FormatBytes(e.MaxBytes))
}

// NewMaxSizeReader 包裝 r，讀取超過 maxSize 時回傳 ReachLimitError
func NewMaxSizeReader(r io.Reader, maxSize int64) io.Reader {
	return &maxSizeReader{reader: r, limit: maxSize, remaining: maxSize}
}

// ReadAll 讀取 r 的全部內容，超過 maxSize 時回傳 ReachLimitError
func ReadAll(r io.Reader, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(NewMaxSizeReader(r, maxSize))
	var limitErr *ReachLimitError
	if errors.As(err, &limitErr) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("upload.ReadAll: failed to read body: %w", err)
	}
	return data, nil
}

type maxSizeReader struct {
	reader    io.Reader
	limit     int64
	remaining int64
}

func (r *maxSizeReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// 只需多讀 1 byte 就能判斷是否超過上限
	if int64(len(p)) > r.remaining+1 {
		p = p[:r.remaining+1]
	}
	n, err := r.reader.Read(p)
	if int64(n) <= r.remaining {
		r.remaining -= int64(n)
		return n, err
	}

	n = int(r.remaining)
	r.remaining = 0
	return n, &ReachLimitError{MaxBytes: r.limit}
}
