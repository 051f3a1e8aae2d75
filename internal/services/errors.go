package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceUnavailable marks a video source that could not be opened or
	// probed. Fatal: the run produces no frame sequence.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrSpecUnreadable marks a missing or malformed specification document.
	// Fatal: detected before any frame processing starts.
	ErrSpecUnreadable = errors.New("spec unreadable")
	// ErrExternalTool marks failures of ffmpeg, ffprobe, or tesseract
	// invocations.
	ErrExternalTool = errors.New("external tool error")
	// ErrConfiguration marks unusable configuration (bad thresholds, missing
	// binaries).
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation marks inputs that parsed but violate a contract.
	ErrValidation = errors.New("validation error")
)

// Wrap builds an error message that includes pipeline stage context while
// tagging it with the provided marker for later classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Classify maps an analysis error to the short category recorded in the run
// history store.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSourceUnavailable):
		return "source_unavailable"
	case errors.Is(err, ErrSpecUnreadable):
		return "spec_unreadable"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "external_tool"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
