package batch

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"shiroink/internal/pipeline"
	"shiroink/pkg/imgutil"
)

// imageExts are the source formats picked up when scanning a directory.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
}

func isImageFile(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// convertFile runs one source image through the pipeline and writes the
// result(s) as PNG. A landscape source is treated as a two-page spread:
// it is split down the middle and each half goes through the full
// pipeline on its own, so both come out at exactly the target
// resolution. Page order follows rtl. Returns the number of pages
// written.
func convertFile(srcPath, destPath string, p *pipeline.Pipeline, rtl bool, level png.CompressionLevel) (int, error) {
	img, err := imgutil.Load(srcPath)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", srcPath, err)
	}

	pages := splitSpread(img, rtl)

	for i, page := range pages {
		out, err := p.Process(page)
		if err != nil {
			return 0, err
		}

		target := destPath
		if len(pages) > 1 {
			target = withStemSuffix(destPath, fmt.Sprintf("_page_%d", i+1))
		}
		if err := savePNG(out, target, level); err != nil {
			return 0, err
		}
	}
	return len(pages), nil
}

func splitSpread(img image.Image, rtl bool) []image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= h {
		return []image.Image{img}
	}

	left := imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+w/2, b.Max.Y))
	right := imaging.Crop(img, image.Rect(b.Min.X+w/2, b.Min.Y, b.Max.X, b.Max.Y))

	if rtl {
		return []image.Image{right, left}
	}
	return []image.Image{left, right}
}

func withStemSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func savePNG(img image.Image, path string, level png.CompressionLevel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
