package imgutil

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	exif "github.com/dsoprea/go-exif/v3"
)

// Load decodes an image file and normalizes its EXIF orientation so the
// pixel data matches what a viewer would display. Phone photos and some
// scanner output store rotation as metadata instead of rotating pixels.
// The content is sniffed before decoding; the file extension is never
// trusted, so a mislabeled file fails with a format error instead of a
// decoder panic deep in the pipeline.
func Load(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	kind, err := SniffReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sniffing %s: %w", path, err)
	}
	if kind == KindUnknown {
		return nil, fmt.Errorf("%s: unrecognized image format", path)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return applyOrientation(img, data), nil
}

// applyOrientation reads the EXIF Orientation tag (values 2-8) and applies
// the corresponding transform. Missing or unreadable EXIF leaves the image
// untouched.
func applyOrientation(img image.Image, raw []byte) image.Image {
	orientation := readOrientation(raw)
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func readOrientation(raw []byte) int {
	tags, _, err := exif.GetFlatExifDataUniversalSearchWithReadSeeker(bytes.NewReader(raw), nil, true)
	if err != nil {
		return 0
	}

	for _, tag := range tags {
		if tag.TagName != "Orientation" || strings.Contains(tag.IfdPath, "Thumbnail") {
			continue
		}
		if values, ok := tag.Value.([]uint16); ok && len(values) > 0 {
			return int(values[0])
		}
	}
	return 0
}
