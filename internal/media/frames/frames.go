package frames

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"strings"

	"journeylens/internal/media/ffprobe"
)

// Sampled frames are decoded at a fixed resolution so change scores compare
// like with like regardless of the recording's native size.
const (
	FrameWidth  = 640
	FrameHeight = 480
)

const bytesPerFrame = FrameWidth * FrameHeight * 3 // rgb24

// Meta describes the probed source stream.
type Meta struct {
	Path           string
	FPS            float64
	TotalFrames    int
	Duration       float64
	SampleInterval int
}

// Frame is one sampled raster. Number is the ordinal into the undecimated
// stream, not the sample index.
type Frame struct {
	Number    int
	Timestamp float64
	Image     *image.RGBA
}

// Stream yields sampled frames in stream order. Next returns io.EOF once the
// source is exhausted.
type Stream interface {
	Meta() Meta
	Next() (Frame, error)
	Close() error
}

// Source opens a video path and returns its sampled frame stream. The
// analyzer depends on this interface so tests can substitute synthetic
// streams.
type Source interface {
	Open(ctx context.Context, path string, samplingFPS float64) (Stream, error)
}

// FFmpegSource decodes frames by probing the container with ffprobe and
// streaming decimated rawvideo frames from an ffmpeg subprocess.
type FFmpegSource struct {
	FFmpeg  string
	FFprobe string
}

// Open probes path and starts the decode pipeline.
func (s *FFmpegSource) Open(ctx context.Context, path string, samplingFPS float64) (Stream, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat video: %w", err)
	}

	probe, err := ffprobe.Inspect(ctx, s.FFprobe, path)
	if err != nil {
		return nil, err
	}
	fps := probe.FrameRate()
	if fps <= 0 {
		return nil, fmt.Errorf("no decodable video stream in %s", path)
	}

	meta := Meta{
		Path:           path,
		FPS:            fps,
		TotalFrames:    probe.TotalFrames(),
		Duration:       probe.DurationSeconds(),
		SampleInterval: SampleInterval(fps, samplingFPS),
	}

	binary := strings.TrimSpace(s.FFmpeg)
	if binary == "" {
		binary = "ffmpeg"
	}

	// The select filter keeps every interval-th decoded frame; -vsync vfr
	// stops ffmpeg from duplicating frames to fill the gaps.
	filter := fmt.Sprintf("select=not(mod(n\\,%d)),scale=%d:%d", meta.SampleInterval, FrameWidth, FrameHeight)
	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-i", path,
		"-vf", filter,
		"-vsync", "vfr",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"pipe:1",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}

	finish := func() error {
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("ffmpeg decode: %w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil
	}
	return newRawStream(meta, stdout, finish), nil
}

// SampleInterval returns how many decoded frames sit between samples:
// floor(fps / samplingFPS), but at least 1 so every frame is sampled when the
// requested rate meets or exceeds the stream rate.
func SampleInterval(fps, samplingFPS float64) int {
	if fps <= 0 || samplingFPS <= 0 {
		return 1
	}
	interval := int(fps / samplingFPS)
	if interval < 1 {
		return 1
	}
	return interval
}

type rawStream struct {
	meta   Meta
	reader io.Reader
	finish func() error

	sample   int
	finished bool
	closeErr error
}

func newRawStream(meta Meta, reader io.Reader, finish func() error) *rawStream {
	return &rawStream{meta: meta, reader: reader, finish: finish}
}

func (s *rawStream) Meta() Meta { return s.meta }

func (s *rawStream) Next() (Frame, error) {
	if s.finished {
		return Frame{}, io.EOF
	}

	buf := make([]byte, bytesPerFrame)
	_, err := io.ReadFull(s.reader, buf)
	if err != nil {
		s.finished = true
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			if finishErr := s.drain(); finishErr != nil {
				return Frame{}, finishErr
			}
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("read frame: %w", err)
	}

	number := s.sample * s.meta.SampleInterval
	s.sample++
	return Frame{
		Number:    number,
		Timestamp: float64(number) / s.meta.FPS,
		Image:     rgbaFromRaw(buf),
	}, nil
}

func (s *rawStream) Close() error {
	if !s.finished {
		s.finished = true
		return s.drain()
	}
	return s.closeErr
}

func (s *rawStream) drain() error {
	if s.finish == nil {
		return nil
	}
	s.closeErr = s.finish()
	s.finish = nil
	return s.closeErr
}

// rgbaFromRaw converts one packed rgb24 frame into an RGBA image.
func rgbaFromRaw(raw []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	src := 0
	for dst := 0; dst < len(img.Pix); dst += 4 {
		img.Pix[dst] = raw[src]
		img.Pix[dst+1] = raw[src+1]
		img.Pix[dst+2] = raw[src+2]
		img.Pix[dst+3] = 0xff
		src += 3
	}
	return img
}
