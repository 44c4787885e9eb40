package socialdesk

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestShrinkImagePassesThroughNonImage(t *testing.T) {
	data := []byte("definitely not an image")
	got, contentType := shrinkImage(data, "application/pdf")
	if !bytes.Equal(got, data) {
		t.Error("non-image data should pass through untouched")
	}
	if contentType != "application/pdf" {
		t.Errorf("content type = %q, want unchanged", contentType)
	}
}

func TestShrinkImageKeepsSmallImage(t *testing.T) {
	data := encodePNG(t, 800, 600)
	got, contentType := shrinkImage(data, "image/png")
	if !bytes.Equal(got, data) {
		t.Error("an image within the width cap should pass through untouched")
	}
	if contentType != "image/png" {
		t.Errorf("content type = %q, want image/png", contentType)
	}
}

func TestShrinkImageDownscales(t *testing.T) {
	data := encodePNG(t, 3200, 800)
	got, contentType := shrinkImage(data, "image/png")

	if contentType != "image/jpeg" {
		t.Fatalf("content type = %q, want image/jpeg", contentType)
	}
	img, err := jpeg.Decode(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("result does not decode as JPEG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != maxImageWidth {
		t.Errorf("width = %d, want %d", bounds.Dx(), maxImageWidth)
	}
	// Aspect ratio preserved: 3200x800 scales to 1600x400.
	if bounds.Dy() != 400 {
		t.Errorf("height = %d, want 400", bounds.Dy())
	}
}
