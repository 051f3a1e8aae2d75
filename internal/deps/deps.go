package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"journeylens/internal/config"
)

// Requirement defines an external binary the analyzer relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the external binaries the analysis pipeline invokes,
// resolved against the configured command names.
func Requirements(cfg *config.Config) []Requirement {
	ffmpeg, ffprobe, tesseract := "ffmpeg", "ffprobe", "tesseract"
	if cfg != nil {
		ffmpeg = cfg.Tools.FFmpeg
		ffprobe = cfg.Tools.FFprobe
		tesseract = cfg.OCR.Binary
	}
	return []Requirement{
		{Name: "FFmpeg", Command: ffmpeg, Description: "decodes and samples video frames"},
		{Name: "FFprobe", Command: ffprobe, Description: "reads stream metadata (fps, frame count)"},
		{Name: "Tesseract", Command: tesseract, Description: "optical character recognition on sampled frames"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the names of required binaries that are not
// available on PATH.
func MissingRequired(statuses []Status) []string {
	var missing []string
	for _, status := range statuses {
		if !status.Optional && !status.Available {
			missing = append(missing, status.Command)
		}
	}
	return missing
}
