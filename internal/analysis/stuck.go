package analysis

import "fmt"

// DetectStuckScreens reports runs of identical fingerprints that persist for
// longer than thresholdSeconds. After reporting a run it resets, so a very
// long freeze produces one issue per threshold-length span rather than one
// issue per frame.
func DetectStuckScreens(frames []Frame, thresholdSeconds float64) []string {
	var issues []string
	currentFingerprint := ""
	stuckStart := -1.0
	for _, frame := range frames {
		if frame.Fingerprint == currentFingerprint {
			if stuckStart < 0 {
				stuckStart = frame.Timestamp
			} else if frame.Timestamp-stuckStart > thresholdSeconds {
				issues = append(issues, fmt.Sprintf("Screen appears stuck from %.1fs to %.1fs", stuckStart, frame.Timestamp))
				stuckStart = -1
			}
			continue
		}
		currentFingerprint = frame.Fingerprint
		stuckStart = -1
	}
	return issues
}
