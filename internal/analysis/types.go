package analysis

// Frame is one sampled instant of the recording. Records are immutable once
// the sampler emits them.
type Frame struct {
	Number        int      `json:"frame_number"`
	Timestamp     float64  `json:"timestamp"`
	Fingerprint   string   `json:"fingerprint"`
	ExtractedText string   `json:"extracted_text"`
	UIElements    []string `json:"ui_elements"`
	ChangeScore   float64  `json:"change_score"`
	IsKeyFrame    bool     `json:"is_key_frame"`
}

// TransitionType labels a detected jump between two UI states.
type TransitionType string

const (
	TransitionAuthentication TransitionType = "authentication"
	TransitionFormSubmission TransitionType = "form_submission"
	TransitionNavigation     TransitionType = "navigation"
	TransitionModalOpen      TransitionType = "modal_open"
	TransitionModalClose     TransitionType = "modal_close"
	TransitionErrorState     TransitionType = "error_state"
	TransitionPageChange     TransitionType = "page_change"
)

// Transition is a detected jump between two consecutive sampled frames. It
// exists only where the destination frame is a key frame.
type Transition struct {
	FromFrame     int            `json:"from_frame"`
	ToFrame       int            `json:"to_frame"`
	FromTimestamp float64        `json:"from_timestamp"`
	ToTimestamp   float64        `json:"to_timestamp"`
	Type          TransitionType `json:"transition_type"`
	Description   string         `json:"description"`
	Confidence    float64        `json:"confidence"`
}

// Journey is the reconstructed narrative for one analyzed recording.
type Journey struct {
	Steps         []string     `json:"steps"`
	Transitions   []Transition `json:"transitions"`
	TotalDuration float64      `json:"total_duration"`
	KeyFrames     []Frame      `json:"key_frames"`
	Issues        []string     `json:"issues"`
}

// Comparison measures a journey against the specification document.
type Comparison struct {
	SpecCoverage    float64  `json:"spec_coverage"`
	MissingFlows    []string `json:"missing_flows"`
	UnexpectedFlows []string `json:"unexpected_flows"`
	TimingIssues    []string `json:"timing_issues"`
	UIDeviations    []string `json:"ui_deviations"`
	OverallScore    float64  `json:"overall_score"`
}

// VideoInfo carries source stream metadata into the result document.
type VideoInfo struct {
	Path            string  `json:"path"`
	Duration        float64 `json:"duration"`
	FPS             float64 `json:"fps"`
	TotalFrames     int     `json:"total_frames"`
	ProcessedFrames int     `json:"processed_frames"`
}

// Summary holds the headline counts of a run.
type Summary struct {
	KeyFramesDetected   int `json:"key_frames_detected"`
	TransitionsDetected int `json:"transitions_detected"`
	JourneySteps        int `json:"journey_steps"`
	IssuesFound         int `json:"issues_found"`
}

// Result is the complete analysis output. Fatal failures produce a Result
// carrying only Error; callers must check it before reading analysis fields.
type Result struct {
	Error      string      `json:"error,omitempty"`
	VideoInfo  *VideoInfo  `json:"video_info,omitempty"`
	Summary    *Summary    `json:"analysis_summary,omitempty"`
	Journey    *Journey    `json:"user_journey,omitempty"`
	Comparison *Comparison `json:"spec_comparison,omitempty"`
	Frames     []Frame     `json:"frames,omitempty"`
	Timestamp  string      `json:"analysis_timestamp,omitempty"`
}

// Failed reports whether the run aborted before producing analysis output.
func (r *Result) Failed() bool {
	return r == nil || r.Error != ""
}
