package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDetectHeader(t *testing.T) {
	cases := []struct {
		name   string
		header []byte
		want   Kind
	}{
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}, KindPNG},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0, 0, 0, 0, 0}, KindJPEG},
		{"gif", append([]byte("GIF89a"), 0, 0, 0, 0, 0, 0), KindGIF},
		{"webp", append([]byte("RIFF"), 0, 0, 0, 0, 'W', 'E', 'B', 'P'), KindWebP},
		{"tiff le", []byte{'I', 'I', 0x2a, 0, 0, 0, 0, 0, 0, 0, 0, 0}, KindTIFF},
		{"tiff be", []byte{'M', 'M', 0, 0x2a, 0, 0, 0, 0, 0, 0, 0, 0}, KindTIFF},
	}

	for _, tc := range cases {
		got, err := DetectHeader(tc.header)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: kind = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDetectHeaderUnknown(t *testing.T) {
	if kind, _ := DetectHeader(bytes.Repeat([]byte{0x42}, 12)); kind != KindUnknown {
		t.Fatalf("kind = %v, want unknown", kind)
	}
	if _, err := DetectHeader([]byte{0x89}); err == nil {
		t.Fatal("short header should error")
	}
}

func TestSniffFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	buildPNG(t, path, 8, 8)

	kind, err := SniffFile(path)
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if kind != KindPNG {
		t.Fatalf("kind = %v, want png", kind)
	}
}

func TestLoadDecodesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	buildPNG(t, path, 12, 20)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 12 || b.Dy() != 20 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, []byte("this is not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for non-image content")
	}
	if !strings.Contains(err.Error(), "unrecognized image format") {
		t.Fatalf("sniffing should reject the content up front, got: %v", err)
	}
}

func TestLoadSniffsContentNotExtension(t *testing.T) {
	// A PNG wearing a .jpg extension must still load: format detection
	// goes by the file content.
	path := filepath.Join(t.TempDir(), "img.jpg")
	buildPNG(t, path, 6, 6)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 6 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error")
	}
}
