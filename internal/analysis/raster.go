package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"image"
)

const (
	fingerprintSize = 64
	compareWidth    = 640
	compareHeight   = 480
)

// GrayImage converts a decoded RGBA frame to 8-bit grayscale using the
// standard luma weights.
func GrayImage(src *image.RGBA) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		srcRow := src.PixOffset(bounds.Min.X, y)
		dstRow := dst.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r := uint32(src.Pix[srcRow])
			g := uint32(src.Pix[srcRow+1])
			b := uint32(src.Pix[srcRow+2])
			dst.Pix[dstRow] = uint8((299*r + 587*g + 114*b + 500) / 1000)
			srcRow += 4
			dstRow++
		}
	}
	return dst
}

// Fingerprint hashes a coarse 64x64 downsample of the frame so that minor
// rendering noise maps to the same value. Identical pixel content always
// yields identical fingerprints.
func Fingerprint(img *image.Gray) string {
	small := resampleGray(img, fingerprintSize, fingerprintSize)
	sum := sha256.Sum256(small.Pix)
	return hex.EncodeToString(sum[:])
}

// ChangeScore returns the fraction of differing pixels between two frames,
// compared at a fixed resolution. Results are in [0, 1].
func ChangeScore(prev, curr *image.Gray) float64 {
	a := normalizeForCompare(prev)
	b := normalizeForCompare(curr)
	total := len(a.Pix)
	if total == 0 {
		return 0
	}
	changed := 0
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			changed++
		}
	}
	return float64(changed) / float64(total)
}

func normalizeForCompare(img *image.Gray) *image.Gray {
	bounds := img.Bounds()
	if bounds.Dx() == compareWidth && bounds.Dy() == compareHeight && bounds.Min == (image.Point{}) && img.Stride == compareWidth {
		return img
	}
	return resampleGray(img, compareWidth, compareHeight)
}

// resampleGray box-averages the source into a width x height grayscale image.
// The mapping is deterministic for a given source.
func resampleGray(src *image.Gray, width, height int) *image.Gray {
	bounds := src.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))
	if srcW == 0 || srcH == 0 {
		return dst
	}
	for y := 0; y < height; y++ {
		y0 := bounds.Min.Y + y*srcH/height
		y1 := bounds.Min.Y + (y+1)*srcH/height
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for x := 0; x < width; x++ {
			x0 := bounds.Min.X + x*srcW/width
			x1 := bounds.Min.X + (x+1)*srcW/width
			if x1 <= x0 {
				x1 = x0 + 1
			}
			sum := 0
			for sy := y0; sy < y1; sy++ {
				row := src.PixOffset(x0, sy)
				for sx := x0; sx < x1; sx++ {
					sum += int(src.Pix[row])
					row++
				}
			}
			count := (y1 - y0) * (x1 - x0)
			dst.Pix[y*width+x] = uint8(sum / count)
		}
	}
	return dst
}
