package upload_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebook/adapters/upload"
)

func TestMaxSizeReader(t *testing.T) {
	tests := []struct {
		name       string
		input      []byte
		maxSize    int64
		wantN      int
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:    "讀取小於限制的內容",
			input:   []byte("hello"),
			maxSize: 10,
			wantN:   5,
		},
		{
			name:       "讀取超過限制的內容",
			input:      []byte("hello world"),
			maxSize:    5,
			wantN:      5,
			wantErr:    true,
			wantErrMsg: "reach limit of 5 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := upload.NewMaxSizeReader(bytes.NewReader(tt.input), tt.maxSize)
			buf := make([]byte, len(tt.input))
			n, err := reader.Read(buf)

			assert.Equal(t, tt.wantN, n)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
			} else {
				assert.True(t, err == nil || err == io.EOF)
			}
		})
	}
}

func TestReadAll(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		data, err := upload.ReadAll(bytes.NewReader([]byte("hello")), 5)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("over limit", func(t *testing.T) {
		data, err := upload.ReadAll(bytes.NewReader([]byte("hello!")), 5)
		assert.Nil(t, data)
		var limitErr *upload.ReachLimitError
		require.True(t, errors.As(err, &limitErr))
		assert.Equal(t, int64(5), limitErr.MaxBytes)
	})
}
