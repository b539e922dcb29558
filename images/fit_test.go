package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitInside(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"landscape 16:9", 2560, 1440, 1280, 720},
		{"square", 1920, 1920, 720, 720},
		{"wide", 4000, 1000, 1280, 320},
		{"3:2", 3000, 2000, 1080, 720},
		{"portrait", 1080, 1920, 405, 720},
		{"already inside", 800, 600, 800, 600},
		{"exact box", 1280, 720, 1280, 720},
		{"tiny", 10, 10, 10, 10},
		{"invalid", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitInside(tt.width, tt.height, MaxWidth, MaxHeight)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestUprightSize(t *testing.T) {
	tests := []struct {
		name         string
		orientation  int
		wantW, wantH int
	}{
		{"unknown", 0, 4032, 3024},
		{"normal", 1, 4032, 3024},
		{"mirrored", 2, 4032, 3024},
		{"upside down", 3, 4032, 3024},
		{"flipped", 4, 4032, 3024},
		{"transposed", 5, 3024, 4032},
		{"rotated 90 cw", 6, 3024, 4032},
		{"transversed", 7, 3024, 4032},
		{"rotated 90 ccw", 8, 3024, 4032},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := UprightSize(4032, 3024, tt.orientation)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestFitInside_RotatedPortrait(t *testing.T) {
	// 手機直拍照片以 4032x3024 儲存，orientation 為 6
	width, height := UprightSize(4032, 3024, 6)
	w, h := FitInside(width, height, MaxWidth, MaxHeight)
	assert.Equal(t, 540, w)
	assert.Equal(t, 720, h)
}
