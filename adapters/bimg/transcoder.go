package bimg

import (
	"fmt"

	"recipebook/images"

	"github.com/h2non/bimg"
)

type format struct {
	imageType   bimg.ImageType
	contentType string
	extension   string
}

var formats = map[string]format{
	"avif": {bimg.AVIF, "image/avif", "avif"},
	"webp": {bimg.WEBP, "image/webp", "webp"},
	"jpeg": {bimg.JPEG, "image/jpeg", "jpeg"},
	"png":  {bimg.PNG, "image/png", "png"},
}

// Transcoder 使用 libvips 縮放並重新編碼圖片
type Transcoder struct{}

func NewTranscoder() *Transcoder {
	return &Transcoder{}
}

// Transcode 等比例縮小到 opts 的範圍內並轉成 opts.Format，不會放大
func (t *Transcoder) Transcode(data []byte, opts images.TranscodeOptions) (images.Encoded, error) {
	const op = "bimg.Transcoder.Transcode"

	target, ok := formats[opts.Format]
	if !ok {
		return images.Encoded{}, fmt.Errorf("%s: unsupported format %q", op, opts.Format)
	}

	image := bimg.NewImage(data)
	// Metadata 回傳的是儲存的像素尺寸，Process 會先依 EXIF 轉正再縮放
	metadata, err := image.Metadata()
	if err != nil {
		return images.Encoded{}, fmt.Errorf("%s: failed to read image metadata: %w", op, err)
	}
	srcWidth, srcHeight := images.UprightSize(metadata.Size.Width, metadata.Size.Height, metadata.Orientation)

	options := bimg.Options{
		Type:          target.imageType,
		Quality:       opts.Quality,
		StripMetadata: true,
	}
	width, height := images.FitInside(srcWidth, srcHeight, opts.MaxWidth, opts.MaxHeight)
	if width != srcWidth || height != srcHeight {
		options.Width = width
		options.Height = height
		options.Force = true
	}

	encoded, err := image.Process(options)
	if err != nil {
		return images.Encoded{}, fmt.Errorf("%s: failed to process image: %w", op, err)
	}

	return images.Encoded{
		Data:        encoded,
		ContentType: target.contentType,
		Extension:   target.extension,
	}, nil
}
