package analysis

import (
	"fmt"
	"strings"
)

const lowConfidenceFloor = 0.3

// ReconstructJourney assembles the step-by-step narrative from the sampled
// frames, the classified transitions, and any stuck-screen findings.
func ReconstructJourney(frames []Frame, transitions []Transition, stuckIssues []string) Journey {
	var steps []string
	var issues []string

	if len(frames) > 0 {
		steps = append(steps, initialStep(frames[0]))
	}

	for _, transition := range transitions {
		steps = append(steps, fmt.Sprintf("%s at %.1fs", transition.Description, transition.ToTimestamp))
		if transition.Confidence < lowConfidenceFloor {
			issues = append(issues, fmt.Sprintf("Low confidence transition at %.1fs", transition.ToTimestamp))
		}
		if transition.Type == TransitionErrorState {
			issues = append(issues, fmt.Sprintf("Error state detected at %.1fs", transition.ToTimestamp))
		}
	}
	issues = append(issues, stuckIssues...)

	var keyFrames []Frame
	for _, frame := range frames {
		if frame.IsKeyFrame {
			keyFrames = append(keyFrames, frame)
		}
	}

	totalDuration := 0.0
	if len(frames) > 0 {
		totalDuration = frames[len(frames)-1].Timestamp
	}

	return Journey{
		Steps:         steps,
		Transitions:   transitions,
		TotalDuration: totalDuration,
		KeyFrames:     keyFrames,
		Issues:        issues,
	}
}

func initialStep(first Frame) string {
	if len(first.UIElements) == 0 {
		return "Started at: Unknown screen"
	}
	shown := first.UIElements
	if len(shown) > 2 {
		shown = shown[:2]
	}
	return fmt.Sprintf("Started at: %s", strings.Join(shown, ", "))
}
