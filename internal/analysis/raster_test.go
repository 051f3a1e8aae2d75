package analysis

import (
	"image"
	"image/color"
	"testing"
)

func solidGray(width, height int, value uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

func TestFingerprintDeterministic(t *testing.T) {
	a := solidGray(320, 240, 40)
	b := solidGray(320, 240, 40)
	if Fingerprint(a) != Fingerprint(b) {
		t.Fatal("identical content produced different fingerprints")
	}
	if len(Fingerprint(a)) != 64 {
		t.Fatalf("expected sha256 hex digest, got %d characters", len(Fingerprint(a)))
	}
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	a := solidGray(320, 240, 40)
	b := solidGray(320, 240, 200)
	if Fingerprint(a) == Fingerprint(b) {
		t.Fatal("different content produced equal fingerprints")
	}
}

func TestChangeScoreBounds(t *testing.T) {
	a := solidGray(640, 480, 10)
	same := solidGray(640, 480, 10)
	if got := ChangeScore(a, same); got != 0 {
		t.Fatalf("identical frames should score 0, got %v", got)
	}
	inverted := solidGray(640, 480, 245)
	if got := ChangeScore(a, inverted); got != 1 {
		t.Fatalf("fully different frames should score 1, got %v", got)
	}
}

func TestChangeScorePartial(t *testing.T) {
	a := solidGray(640, 480, 0)
	b := solidGray(640, 480, 0)
	for y := 0; y < 240; y++ {
		for x := 0; x < 640; x++ {
			b.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	got := ChangeScore(a, b)
	if got < 0.49 || got > 0.51 {
		t.Fatalf("half-changed frame should score near 0.5, got %v", got)
	}
}

func TestChangeScoreResamplesMismatchedSizes(t *testing.T) {
	a := solidGray(64, 48, 0)
	b := solidGray(320, 240, 255)
	if got := ChangeScore(a, b); got != 1 {
		t.Fatalf("expected full change after resample, got %v", got)
	}
}

func TestGrayImageLuma(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	gray := GrayImage(img)
	if gray.GrayAt(0, 0).Y != 255 {
		t.Fatalf("white should map to 255, got %d", gray.GrayAt(0, 0).Y)
	}
	if got := gray.GrayAt(1, 0).Y; got < 140 || got > 160 {
		t.Fatalf("pure green should map near 150, got %d", got)
	}
}
