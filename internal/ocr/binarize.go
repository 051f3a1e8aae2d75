package ocr

import "image"

// Binarize applies Otsu thresholding to a grayscale frame. Text recognition
// on screen captures improves markedly when antialiased glyph edges collapse
// to pure black and white before OCR.
func Binarize(src *image.Gray) *image.Gray {
	threshold := otsuThreshold(src)

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for i, v := range src.Pix {
		if v > threshold {
			dst.Pix[i] = 255
		} else {
			dst.Pix[i] = 0
		}
	}
	return dst
}

// otsuThreshold picks the level that maximizes between-class variance of the
// pixel histogram.
func otsuThreshold(src *image.Gray) uint8 {
	var histogram [256]int
	for _, v := range src.Pix {
		histogram[v]++
	}

	total := len(src.Pix)
	if total == 0 {
		return 0
	}

	var sum float64
	for level, count := range histogram {
		sum += float64(level) * float64(count)
	}

	var sumBackground float64
	var weightBackground int
	var maxVariance float64
	var threshold uint8

	for level := 0; level < 256; level++ {
		weightBackground += histogram[level]
		if weightBackground == 0 {
			continue
		}
		weightForeground := total - weightBackground
		if weightForeground == 0 {
			break
		}
		sumBackground += float64(level) * float64(histogram[level])

		meanBackground := sumBackground / float64(weightBackground)
		meanForeground := (sum - sumBackground) / float64(weightForeground)
		diff := meanBackground - meanForeground
		variance := float64(weightBackground) * float64(weightForeground) * diff * diff
		if variance > maxVariance {
			maxVariance = variance
			threshold = uint8(level)
		}
	}
	return threshold
}
