package frames

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestSampleInterval(t *testing.T) {
	cases := []struct {
		fps, sampling float64
		want          int
	}{
		{30, 1, 30},
		{29.97, 1, 29},
		{30, 2, 15},
		{30, 60, 1}, // sampling faster than the stream keeps every frame
		{30, 30, 1},
		{0, 1, 1},
		{30, 0, 1},
	}
	for _, tc := range cases {
		if got := SampleInterval(tc.fps, tc.sampling); got != tc.want {
			t.Fatalf("SampleInterval(%v, %v) = %d, want %d", tc.fps, tc.sampling, got, tc.want)
		}
	}
}

func rawFrame(r, g, b byte) []byte {
	buf := make([]byte, bytesPerFrame)
	for i := 0; i < len(buf); i += 3 {
		buf[i], buf[i+1], buf[i+2] = r, g, b
	}
	return buf
}

func TestRawStreamNumbersAndTimestamps(t *testing.T) {
	meta := Meta{FPS: 30, SampleInterval: 30}
	data := append(rawFrame(255, 0, 0), rawFrame(0, 255, 0)...)
	stream := newRawStream(meta, bytes.NewReader(data), nil)

	first, err := stream.Next()
	if err != nil {
		t.Fatalf("first Next: %v", err)
	}
	if first.Number != 0 || first.Timestamp != 0 {
		t.Fatalf("unexpected first frame: number=%d ts=%v", first.Number, first.Timestamp)
	}
	if got := first.Image.RGBAAt(10, 10); got.R != 255 || got.G != 0 {
		t.Fatalf("unexpected pixel: %+v", got)
	}

	second, err := stream.Next()
	if err != nil {
		t.Fatalf("second Next: %v", err)
	}
	if second.Number != 30 {
		t.Fatalf("expected stream ordinal 30, got %d", second.Number)
	}
	if second.Timestamp != 1.0 {
		t.Fatalf("expected timestamp 1.0, got %v", second.Timestamp)
	}

	if _, err := stream.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	// Subsequent calls stay terminal.
	if _, err := stream.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after exhaustion, got %v", err)
	}
}

func TestRawStreamSurfacesDecodeFailure(t *testing.T) {
	decodeErr := errors.New("ffmpeg decode: boom")
	stream := newRawStream(Meta{FPS: 1, SampleInterval: 1}, bytes.NewReader(nil), func() error {
		return decodeErr
	})
	if _, err := stream.Next(); !errors.Is(err, decodeErr) {
		t.Fatalf("expected decode error surfaced, got %v", err)
	}
}

func TestRawStreamCloseDrains(t *testing.T) {
	calls := 0
	stream := newRawStream(Meta{FPS: 1, SampleInterval: 1}, bytes.NewReader(rawFrame(1, 2, 3)), func() error {
		calls++
		return nil
	})
	if err := stream.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if calls != 1 {
		t.Fatalf("finish should run once, ran %d times", calls)
	}
}
