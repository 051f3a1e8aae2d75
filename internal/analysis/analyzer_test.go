package analysis

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"journeylens/internal/media/frames"
	"journeylens/internal/ocr"
	"journeylens/internal/services"
	"journeylens/internal/specdoc"
)

func solidRGBA(value uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGBA(x, y, color.RGBA{R: value, G: value, B: value, A: 255})
		}
	}
	return img
}

type scriptedStream struct {
	meta   frames.Meta
	images []*image.RGBA
	idx    int
	err    error
}

func (s *scriptedStream) Meta() frames.Meta { return s.meta }

func (s *scriptedStream) Next() (frames.Frame, error) {
	if s.idx >= len(s.images) {
		if s.err != nil {
			return frames.Frame{}, s.err
		}
		return frames.Frame{}, io.EOF
	}
	frame := frames.Frame{
		Number:    s.idx,
		Timestamp: float64(s.idx),
		Image:     s.images[s.idx],
	}
	s.idx++
	return frame, nil
}

func (s *scriptedStream) Close() error { return nil }

type scriptedSource struct {
	stream  *scriptedStream
	openErr error
}

func (s *scriptedSource) Open(ctx context.Context, path string, samplingFPS float64) (frames.Stream, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	return s.stream, nil
}

type scriptedEngine struct {
	texts []string
	idx   int
}

func (e *scriptedEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	if e.idx >= len(e.texts) {
		return "", nil
	}
	text := e.texts[e.idx]
	e.idx++
	return text, nil
}

func fourScreenRecording() (*scriptedSource, *scriptedEngine) {
	source := &scriptedSource{stream: &scriptedStream{
		meta: frames.Meta{
			Path:           "recording.mp4",
			FPS:            1,
			TotalFrames:    4,
			Duration:       4,
			SampleInterval: 1,
		},
		images: []*image.RGBA{solidRGBA(20), solidRGBA(120), solidRGBA(200), solidRGBA(60)},
	}}
	engine := &scriptedEngine{texts: []string{
		"Login Email Password",
		"Dashboard Menu welcome",
		"Submit order form",
		"Success thank you",
	}}
	return source, engine
}

func writeSpecFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

const fourScreenSpec = `{"user_flows": ["login", "dashboard", "form submission"]}`

func TestAnalyzerEndToEnd(t *testing.T) {
	source, engine := fourScreenRecording()
	outputDir := t.TempDir()
	analyzer := New(Options{OutputDir: outputDir}, source, ocr.NewExtractor(engine, ocr.DefaultVocabulary(), nil), nil)

	result, err := analyzer.Run(context.Background(), "recording.mp4", writeSpecFile(t, fourScreenSpec))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Failed() {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if result.VideoInfo.ProcessedFrames != 4 {
		t.Fatalf("expected 4 processed frames, got %d", result.VideoInfo.ProcessedFrames)
	}
	if result.Summary.KeyFramesDetected != 4 {
		t.Fatalf("every distinct screen should be a key frame, got %d", result.Summary.KeyFramesDetected)
	}
	if result.Summary.TransitionsDetected != 3 {
		t.Fatalf("expected 3 transitions, got %d", result.Summary.TransitionsDetected)
	}
	if result.Journey.Steps[0] != "Started at: Email, Login" {
		t.Fatalf("got initial step %q", result.Journey.Steps[0])
	}
	if result.Journey.Transitions[0].Type != TransitionNavigation {
		t.Fatalf("dashboard arrival should classify as navigation, got %q", result.Journey.Transitions[0].Type)
	}
	if result.Journey.Transitions[2].Type != TransitionFormSubmission {
		t.Fatalf("success after submit should classify as form submission, got %q", result.Journey.Transitions[2].Type)
	}
	if result.Comparison.SpecCoverage < 0.5 {
		t.Fatalf("coverage should be at least half, got %v", result.Comparison.SpecCoverage)
	}
	if len(result.Comparison.MissingFlows) != 1 || result.Comparison.MissingFlows[0] != "form submission" {
		t.Fatalf("expected only the form submission flow missing, got %v", result.Comparison.MissingFlows)
	}

	saved, err := filepath.Glob(filepath.Join(outputDir, "frame_*.jpg"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(saved) != 4 {
		t.Fatalf("expected 4 key frame files, got %d", len(saved))
	}
}

func TestAnalyzerDeterministic(t *testing.T) {
	specPath := writeSpecFile(t, fourScreenSpec)
	run := func() *Result {
		source, engine := fourScreenRecording()
		analyzer := New(Options{}, source, ocr.NewExtractor(engine, ocr.DefaultVocabulary(), nil), nil)
		result, err := analyzer.Run(context.Background(), "recording.mp4", specPath)
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		return result
	}
	first := run()
	second := run()
	if !reflect.DeepEqual(first.Journey, second.Journey) {
		t.Fatal("journeys differ between identical runs")
	}
	if !reflect.DeepEqual(first.Comparison, second.Comparison) {
		t.Fatal("comparisons differ between identical runs")
	}
	if !reflect.DeepEqual(first.Frames, second.Frames) {
		t.Fatal("frame records differ between identical runs")
	}
}

func TestAnalyzerSpecUnreadable(t *testing.T) {
	source, engine := fourScreenRecording()
	analyzer := New(Options{}, source, ocr.NewExtractor(engine, ocr.DefaultVocabulary(), nil), nil)

	result, err := analyzer.Run(context.Background(), "recording.mp4", filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, services.ErrSpecUnreadable) {
		t.Fatalf("expected spec unreadable, got %v", err)
	}
	if !result.Failed() {
		t.Fatal("result should carry the failure")
	}
	if result.VideoInfo != nil {
		t.Fatal("failed result should omit video info")
	}
}

func TestAnalyzerSourceUnavailable(t *testing.T) {
	source := &scriptedSource{openErr: os.ErrNotExist}
	_, engine := fourScreenRecording()
	analyzer := New(Options{}, source, ocr.NewExtractor(engine, ocr.DefaultVocabulary(), nil), nil)

	result, err := analyzer.Run(context.Background(), "missing.mp4", writeSpecFile(t, fourScreenSpec))
	if !errors.Is(err, services.ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
	if !result.Failed() {
		t.Fatal("result should carry the failure")
	}
	if result.VideoInfo != nil || result.Journey != nil {
		t.Fatal("failed result should omit analysis fields")
	}
}

func TestAnalyzerDecodeFailure(t *testing.T) {
	source, engine := fourScreenRecording()
	source.stream.images = source.stream.images[:1]
	source.stream.err = errors.New("pipe truncated")
	analyzer := New(Options{}, source, ocr.NewExtractor(engine, ocr.DefaultVocabulary(), nil), nil)

	result, err := analyzer.Run(context.Background(), "recording.mp4", writeSpecFile(t, fourScreenSpec))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	if !result.Failed() {
		t.Fatal("result should carry the failure")
	}
}

func TestAnalyzerComparisonUsesSpecDefaults(t *testing.T) {
	source, engine := fourScreenRecording()
	analyzer := New(Options{}, source, ocr.NewExtractor(engine, ocr.DefaultVocabulary(), nil), nil)

	result, err := analyzer.Run(context.Background(), "recording.mp4", writeSpecFile(t, `{}`))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	total := len(result.Comparison.MissingFlows)
	matched := int(result.Comparison.SpecCoverage * float64(len(specdoc.DefaultFlows())))
	if total+matched != len(specdoc.DefaultFlows()) {
		t.Fatalf("default flows should drive the comparison, missing %v coverage %v",
			result.Comparison.MissingFlows, result.Comparison.SpecCoverage)
	}
}
