package runs

import (
	"time"

	"github.com/google/uuid"

	"journeylens/internal/analysis"
	"journeylens/internal/services"
)

// Status describes the terminal state of an analysis run.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one recorded analysis, successful or not.
type Run struct {
	ID              string
	VideoPath       string
	SpecPath        string
	Status          Status
	ErrorCategory   string
	ErrorMessage    string
	ProcessedFrames int
	KeyFrames       int
	Transitions     int
	Issues          int
	SpecCoverage    float64
	OverallScore    float64
	ResultPath      string
	ReportPath      string
	CreatedAt       time.Time
}

// NewRun records the outcome of an analyzer invocation. A non-nil runErr
// produces a failed run carrying the error category and message.
func NewRun(videoPath, specPath string, result *analysis.Result, runErr error) Run {
	run := Run{
		ID:        uuid.NewString(),
		VideoPath: videoPath,
		SpecPath:  specPath,
		Status:    StatusCompleted,
		CreatedAt: time.Now().UTC(),
	}
	if runErr != nil {
		run.Status = StatusFailed
		run.ErrorCategory = services.Classify(runErr)
		run.ErrorMessage = runErr.Error()
		return run
	}
	if result != nil {
		if result.VideoInfo != nil {
			run.ProcessedFrames = result.VideoInfo.ProcessedFrames
		}
		if result.Summary != nil {
			run.KeyFrames = result.Summary.KeyFramesDetected
			run.Transitions = result.Summary.TransitionsDetected
			run.Issues = result.Summary.IssuesFound
		}
		if result.Comparison != nil {
			run.SpecCoverage = result.Comparison.SpecCoverage
			run.OverallScore = result.Comparison.OverallScore
		}
	}
	return run
}
