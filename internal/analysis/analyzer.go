package analysis

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"journeylens/internal/logging"
	"journeylens/internal/media/frames"
	"journeylens/internal/ocr"
	"journeylens/internal/services"
	"journeylens/internal/specdoc"
)

// Options tunes one analysis run. Zero values select the documented defaults.
type Options struct {
	SamplingFPS           float64
	ChangeThreshold       float64
	StuckThresholdSeconds float64
	ProgressInterval      int
	OutputDir             string
	Rules                 Ruleset
}

func (o Options) withDefaults() Options {
	if o.SamplingFPS <= 0 {
		o.SamplingFPS = 1.0
	}
	if o.ChangeThreshold <= 0 {
		o.ChangeThreshold = 0.15
	}
	if o.StuckThresholdSeconds <= 0 {
		o.StuckThresholdSeconds = 10.0
	}
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = 10
	}
	return o
}

// Analyzer runs the full pipeline: sample frames, extract text, detect
// transitions, reconstruct the journey, and compare it with the spec.
type Analyzer struct {
	opts      Options
	source    frames.Source
	extractor *ocr.Extractor
	detector  *Detector
	logger    *slog.Logger
}

// New wires an analyzer from its collaborators. A nil logger disables
// logging.
func New(opts Options, source frames.Source, extractor *ocr.Extractor, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = logging.NewNop()
	}
	opts = opts.withDefaults()
	return &Analyzer{
		opts:      opts,
		source:    source,
		extractor: extractor,
		detector:  NewDetector(opts.Rules),
		logger:    logger,
	}
}

// Run analyzes one recording against one specification document. Fatal
// failures return both a Result carrying the error text and the error itself
// so callers can persist the failed run.
func (a *Analyzer) Run(ctx context.Context, videoPath, specPath string) (*Result, error) {
	doc, err := specdoc.Load(specPath)
	if err != nil {
		wrapped := services.Wrap(services.ErrSpecUnreadable, "comparator", "load spec", specPath, err)
		return failedResult(wrapped), wrapped
	}

	stream, err := a.source.Open(ctx, videoPath, a.opts.SamplingFPS)
	if err != nil {
		wrapped := services.Wrap(services.ErrSourceUnavailable, "sampler", "open video", videoPath, err)
		return failedResult(wrapped), wrapped
	}
	defer stream.Close()

	meta := stream.Meta()
	a.logger.Info("analysis started",
		slog.String("video", videoPath),
		slog.Float64("fps", meta.FPS),
		slog.Int("total_frames", meta.TotalFrames),
		slog.Int("sample_interval", meta.SampleInterval))

	sampled, err := a.sampleFrames(ctx, stream)
	if err != nil {
		wrapped := services.Wrap(services.ErrExternalTool, "sampler", "decode frames", videoPath, err)
		return failedResult(wrapped), wrapped
	}

	transitions := a.detector.Detect(sampled)
	stuck := DetectStuckScreens(sampled, a.opts.StuckThresholdSeconds)
	journey := ReconstructJourney(sampled, transitions, stuck)
	comparison := CompareWithSpec(journey, doc)

	duration := meta.Duration
	if duration <= 0 && meta.FPS > 0 {
		duration = float64(meta.TotalFrames) / meta.FPS
	}

	result := &Result{
		VideoInfo: &VideoInfo{
			Path:            videoPath,
			Duration:        duration,
			FPS:             meta.FPS,
			TotalFrames:     meta.TotalFrames,
			ProcessedFrames: len(sampled),
		},
		Summary: &Summary{
			KeyFramesDetected:   len(journey.KeyFrames),
			TransitionsDetected: len(transitions),
			JourneySteps:        len(journey.Steps),
			IssuesFound:         len(journey.Issues),
		},
		Journey:    &journey,
		Comparison: &comparison,
		Frames:     sampled,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	a.logger.Info("analysis complete",
		slog.Int("processed_frames", len(sampled)),
		slog.Int("key_frames", len(journey.KeyFrames)),
		slog.Int("transitions", len(transitions)),
		slog.Float64("overall_score", comparison.OverallScore))
	return result, nil
}

func (a *Analyzer) sampleFrames(ctx context.Context, stream frames.Stream) ([]Frame, error) {
	var sampled []Frame
	var prevGray *image.Gray
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		gray := GrayImage(frame.Image)
		record := Frame{
			Number:      frame.Number,
			Timestamp:   frame.Timestamp,
			Fingerprint: Fingerprint(gray),
		}
		if prevGray == nil {
			record.IsKeyFrame = true
		} else {
			record.ChangeScore = ChangeScore(prevGray, gray)
			record.IsKeyFrame = record.ChangeScore > a.opts.ChangeThreshold
		}

		text, elements := a.extractor.Extract(ctx, gray)
		record.ExtractedText = text
		record.UIElements = elements

		if record.IsKeyFrame && a.opts.OutputDir != "" {
			a.saveKeyFrame(frame.Image, record)
		}

		sampled = append(sampled, record)
		prevGray = gray

		if len(sampled)%a.opts.ProgressInterval == 0 {
			a.logger.Info("sampling progress",
				slog.Int("frames_processed", len(sampled)),
				slog.Float64("timestamp", record.Timestamp))
		}
	}
	return sampled, nil
}

// saveKeyFrame persists a key frame as JPEG. Persistence failures degrade to
// a warning; the analysis itself never depends on the files existing.
func (a *Analyzer) saveKeyFrame(img *image.RGBA, record Frame) {
	name := fmt.Sprintf("frame_%06d_%.1fs.jpg", record.Number, record.Timestamp)
	path := filepath.Join(a.opts.OutputDir, name)
	file, err := os.Create(path)
	if err != nil {
		a.logger.Warn("key frame not saved", slog.String("path", path), logging.Error(err))
		return
	}
	defer file.Close()
	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: 85}); err != nil {
		a.logger.Warn("key frame not saved", slog.String("path", path), logging.Error(err))
	}
}

func failedResult(err error) *Result {
	return &Result{
		Error:     err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
