package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Engine recognizes text in a raster frame. Implementations must be safe for
// sequential reuse across frames; the analyzer never calls Recognize
// concurrently.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Tesseract runs the tesseract binary with the frame piped over stdin as PNG.
type Tesseract struct {
	Binary      string
	PageSegMode int
	Timeout     time.Duration
}

// Recognize invokes tesseract and returns its raw text output.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	binary := strings.TrimSpace(t.Binary)
	if binary == "" {
		binary = "tesseract"
	}
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	var input bytes.Buffer
	if err := png.Encode(&input, img); err != nil {
		return "", fmt.Errorf("encode frame: %w", err)
	}

	args := []string{"stdin", "stdout"}
	if t.PageSegMode > 0 {
		args = append(args, "--psm", strconv.Itoa(t.PageSegMode))
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = &input
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
