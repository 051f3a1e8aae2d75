// Package report renders an analysis result as a markdown document.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"journeylens/internal/analysis"
)

var titleCaser = cases.Title(language.English)

// Render produces the full markdown report for a result. Failed results
// render a short document carrying only the failure.
func Render(result *analysis.Result) string {
	var b strings.Builder
	b.WriteString("# Screen Recording Analysis Report\n\n")

	if result.Failed() {
		fmt.Fprintf(&b, "Analysis failed: %s\n", result.Error)
		return b.String()
	}

	if result.Timestamp != "" {
		fmt.Fprintf(&b, "Generated: %s\n\n", result.Timestamp)
	}

	writeVideoInfo(&b, result.VideoInfo)
	writeSummary(&b, result.Summary)
	writeJourney(&b, result.Journey)
	writeTransitions(&b, result.Journey)
	writeComparison(&b, result.Comparison)
	writeIssues(&b, result.Journey)
	writeRecommendations(&b, result)

	return b.String()
}

// TransitionTitle turns a wire-format transition type into a heading-friendly
// label, for example form_submission becomes Form Submission.
func TransitionTitle(kind analysis.TransitionType) string {
	return titleCaser.String(strings.ReplaceAll(string(kind), "_", " "))
}

func writeVideoInfo(b *strings.Builder, info *analysis.VideoInfo) {
	if info == nil {
		return
	}
	b.WriteString("## Video Information\n\n")
	fmt.Fprintf(b, "- Path: %s\n", info.Path)
	fmt.Fprintf(b, "- Duration: %.1fs\n", info.Duration)
	fmt.Fprintf(b, "- Frame rate: %.2f fps\n", info.FPS)
	fmt.Fprintf(b, "- Total frames: %d\n", info.TotalFrames)
	fmt.Fprintf(b, "- Processed frames: %d\n\n", info.ProcessedFrames)
}

func writeSummary(b *strings.Builder, summary *analysis.Summary) {
	if summary == nil {
		return
	}
	b.WriteString("## Analysis Summary\n\n")
	fmt.Fprintf(b, "- Key frames detected: %d\n", summary.KeyFramesDetected)
	fmt.Fprintf(b, "- Transitions detected: %d\n", summary.TransitionsDetected)
	fmt.Fprintf(b, "- Journey steps: %d\n", summary.JourneySteps)
	fmt.Fprintf(b, "- Issues found: %d\n\n", summary.IssuesFound)
}

func writeJourney(b *strings.Builder, journey *analysis.Journey) {
	if journey == nil {
		return
	}
	b.WriteString("## User Journey Flow\n\n")
	if len(journey.Steps) == 0 {
		b.WriteString("No journey steps were reconstructed.\n\n")
		return
	}
	for i, step := range journey.Steps {
		fmt.Fprintf(b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(b, "\nTotal duration: %.1fs\n\n", journey.TotalDuration)
}

func writeTransitions(b *strings.Builder, journey *analysis.Journey) {
	if journey == nil {
		return
	}
	b.WriteString("## UI Transitions\n\n")
	if len(journey.Transitions) == 0 {
		b.WriteString("No transitions were detected.\n\n")
		return
	}
	b.WriteString("| Time | Type | Description | Confidence |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, tr := range journey.Transitions {
		fmt.Fprintf(b, "| %.1fs | %s | %s | %.0f%% |\n",
			tr.ToTimestamp, TransitionTitle(tr.Type), tr.Description, tr.Confidence*100)
	}
	b.WriteString("\n")
}

func writeComparison(b *strings.Builder, comparison *analysis.Comparison) {
	if comparison == nil {
		return
	}
	b.WriteString("## Specification Comparison\n\n")
	fmt.Fprintf(b, "- Spec coverage: %.1f%%\n", comparison.SpecCoverage*100)
	fmt.Fprintf(b, "- Overall score: %.1f%%\n\n", comparison.OverallScore*100)

	if len(comparison.MissingFlows) > 0 {
		b.WriteString("### Missing Flows\n\n")
		for _, flow := range comparison.MissingFlows {
			fmt.Fprintf(b, "- %s\n", flow)
		}
		b.WriteString("\n")
	}
	if len(comparison.UnexpectedFlows) > 0 {
		b.WriteString("### Unexpected Flows\n\n")
		for _, flow := range comparison.UnexpectedFlows {
			fmt.Fprintf(b, "- %s\n", flow)
		}
		b.WriteString("\n")
	}
	if len(comparison.TimingIssues) > 0 {
		b.WriteString("### Timing Issues\n\n")
		for _, issue := range comparison.TimingIssues {
			fmt.Fprintf(b, "- %s\n", issue)
		}
		b.WriteString("\n")
	}
}

func writeIssues(b *strings.Builder, journey *analysis.Journey) {
	if journey == nil || len(journey.Issues) == 0 {
		return
	}
	b.WriteString("## Issues Detected\n\n")
	for _, issue := range journey.Issues {
		fmt.Fprintf(b, "- %s\n", issue)
	}
	b.WriteString("\n")
}

func writeRecommendations(b *strings.Builder, result *analysis.Result) {
	b.WriteString("## Recommendations\n\n")
	for _, rec := range recommendations(result) {
		fmt.Fprintf(b, "- %s\n", rec)
	}
}

func recommendations(result *analysis.Result) []string {
	var recs []string
	comparison := result.Comparison
	if comparison != nil {
		switch {
		case comparison.OverallScore >= 0.8:
			recs = append(recs, "The recording matches the specification well.")
		case comparison.OverallScore >= 0.5:
			recs = append(recs, "The recording mostly follows the specification; review the missing flows below.")
		default:
			recs = append(recs, "The recording diverges significantly from the specification.")
		}
		if len(comparison.MissingFlows) > 0 {
			recs = append(recs, fmt.Sprintf("Verify the %d expected flow(s) that were not observed in the recording.", len(comparison.MissingFlows)))
		}
	}
	if result.Journey != nil && len(result.Journey.Issues) > 0 {
		recs = append(recs, fmt.Sprintf("Investigate the %d issue(s) flagged during analysis.", len(result.Journey.Issues)))
	}
	if len(recs) == 0 {
		recs = append(recs, "No action required.")
	}
	return recs
}
