package upload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipebook/adapters/upload"
)

func TestDetectImageType(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantType string
		wantOk   bool
	}{
		{
			name:     "jpeg",
			data:     []byte("\xFF\xD8\xFF\xE0\x00\x10JFIF\x00"),
			wantType: "image/jpeg",
			wantOk:   true,
		},
		{
			name:     "png",
			data:     []byte("\x89PNG\x0D\x0A\x1A\x0A\x00\x00\x00\x0DIHDR"),
			wantType: "image/png",
			wantOk:   true,
		},
		{
			name:     "avif",
			data:     []byte("\x00\x00\x00\x1cftypavif\x00\x00\x00\x00"),
			wantType: "image/avif",
			wantOk:   true,
		},
		{
			name:     "tiff",
			data:     []byte("II*\x00\x08\x00\x00\x00"),
			wantType: "image/tiff",
			wantOk:   true,
		},
		{
			name:     "pdf",
			data:     []byte("%PDF-1.7\n"),
			wantType: "application/pdf",
			wantOk:   false,
		},
		{
			name:     "plain text",
			data:     []byte("just some words"),
			wantType: "text/plain",
			wantOk:   false,
		},
		{
			name:     "svg is not sniffed as image",
			data:     []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"></svg>"),
			wantType: "text/plain",
			wantOk:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotOk := upload.DetectImageType(tt.data)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantOk, gotOk)
		})
	}
}
