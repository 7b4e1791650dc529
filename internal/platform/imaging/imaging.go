// Package imaging validates and normalizes uploaded scan images.
// Uploads arrive in whatever format the clinic's equipment produces, so
// the decoder accepts PNG, JPEG, GIF, BMP, TIFF and WebP and re-encodes
// everything as PNG before it is handed to the vision model.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxPixels caps the decoded image area. Dimensions are read from the
// header before the full decode, so a small file claiming enormous
// dimensions cannot exhaust memory.
const MaxPixels = 64 << 20

var (
	ErrNotAnImage    = errors.New("file is not a recognizable image")
	ErrImageTooLarge = errors.New("image dimensions exceed supported size")
)

// Normalize decodes raw upload bytes and re-encodes them as PNG. It
// returns the PNG bytes and the detected source format ("jpeg", "bmp",
// ...). Undecodable input yields ErrNotAnImage.
func Normalize(data []byte) ([]byte, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxPixels/cfg.Height {
		return nil, "", ErrImageTooLarge
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), format, nil
}

// Base64 returns the standard base64 encoding of image bytes.
func Base64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DataURL wraps PNG bytes as a data URL suitable for vision model input.
func DataURL(pngData []byte) string {
	return "data:image/png;base64," + Base64(pngData)
}
