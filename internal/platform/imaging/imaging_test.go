package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestNormalize_PNG(t *testing.T) {
	data := testImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	})

	out, format, err := Normalize(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != "png" {
		t.Errorf("expected format png, got %q", format)
	}

	// Output must itself be decodable PNG with the same bounds.
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("normalized output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("expected 8x8 output, got %v", img.Bounds())
	}
}

func TestNormalize_JPEGToPNG(t *testing.T) {
	data := testImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(buf, img, nil)
	})

	out, format, err := Normalize(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected format jpeg, got %q", format)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("normalized output is not valid PNG: %v", err)
	}
}

func TestNormalize_BMPToPNG(t *testing.T) {
	data := testImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return bmp.Encode(buf, img)
	})

	out, format, err := Normalize(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != "bmp" {
		t.Errorf("expected format bmp, got %q", format)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("normalized output is not valid PNG: %v", err)
	}
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		{},
		[]byte("this is not an image"),
		bytes.Repeat([]byte{0xde, 0xad}, 100),
	} {
		if _, _, err := Normalize(data); !errors.Is(err, ErrNotAnImage) {
			t.Errorf("Normalize(%d bytes): expected ErrNotAnImage, got %v", len(data), err)
		}
	}
}

func TestNormalize_RejectsTruncated(t *testing.T) {
	data := testImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	})

	// Keep the header but cut off the pixel data.
	if _, _, err := Normalize(data[:40]); !errors.Is(err, ErrNotAnImage) {
		t.Errorf("expected ErrNotAnImage for truncated file, got %v", err)
	}
}

// giantPNGHeader builds a syntactically valid PNG signature and IHDR
// chunk claiming huge dimensions, with no pixel data behind it.
func giantPNGHeader(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], 20000) // width
	binary.BigEndian.PutUint32(ihdr[4:8], 20000) // height
	ihdr[8] = 8 // bit depth
	ihdr[9] = 2 // color type: truecolor

	var length [4]byte
	binary.BigEndian.PutUint32(length[:], 13)
	buf.Write(length[:])
	buf.WriteString("IHDR")
	buf.Write(ihdr)

	crc := crc32.NewIEEE()
	crc.Write([]byte("IHDR"))
	crc.Write(ihdr)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	buf.Write(sum[:])

	return buf.Bytes()
}

func TestNormalize_RejectsOversizedDimensions(t *testing.T) {
	if _, _, err := Normalize(giantPNGHeader(t)); !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestDataURL(t *testing.T) {
	url := DataURL([]byte{0x01, 0x02, 0x03})
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("expected data URL prefix, got %q", url)
	}
	if url != "data:image/png;base64,AQID" {
		t.Errorf("unexpected data URL: %q", url)
	}
}

func TestBase64(t *testing.T) {
	if got := Base64([]byte("hello")); got != "aGVsbG8=" {
		t.Errorf("expected aGVsbG8=, got %q", got)
	}
}
