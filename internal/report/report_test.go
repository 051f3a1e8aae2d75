package report

import (
	"strings"
	"testing"

	"journeylens/internal/analysis"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		VideoInfo: &analysis.VideoInfo{
			Path:            "demo.mp4",
			Duration:        12.5,
			FPS:             30,
			TotalFrames:     375,
			ProcessedFrames: 13,
		},
		Summary: &analysis.Summary{
			KeyFramesDetected:   4,
			TransitionsDetected: 3,
			JourneySteps:        4,
			IssuesFound:         1,
		},
		Journey: &analysis.Journey{
			Steps: []string{
				"Started at: Email, Login",
				"User navigated to different section at 2.0s",
			},
			Transitions: []analysis.Transition{
				{ToTimestamp: 2, Type: analysis.TransitionNavigation, Description: "User navigated to different section", Confidence: 0.9},
				{ToTimestamp: 5, Type: analysis.TransitionFormSubmission, Description: "Form was submitted successfully", Confidence: 1},
			},
			TotalDuration: 12,
			Issues:        []string{"Low confidence transition at 8.0s"},
		},
		Comparison: &analysis.Comparison{
			SpecCoverage: 0.75,
			MissingFlows: []string{"checkout"},
			OverallScore: 0.65,
		},
		Timestamp: "2026-08-30T10:00:00Z",
	}
}

func TestRenderSections(t *testing.T) {
	body := Render(sampleResult())
	for _, heading := range []string{
		"# Screen Recording Analysis Report",
		"## Video Information",
		"## Analysis Summary",
		"## User Journey Flow",
		"## UI Transitions",
		"## Specification Comparison",
		"### Missing Flows",
		"## Issues Detected",
		"## Recommendations",
	} {
		if !strings.Contains(body, heading) {
			t.Fatalf("report missing %q", heading)
		}
	}
	if !strings.Contains(body, "1. Started at: Email, Login") {
		t.Fatalf("journey steps should be numbered:\n%s", body)
	}
	if !strings.Contains(body, "| 5.0s | Form Submission | Form was submitted successfully | 100% |") {
		t.Fatalf("transition table row missing:\n%s", body)
	}
	if !strings.Contains(body, "Spec coverage: 75.0%") {
		t.Fatalf("coverage line missing:\n%s", body)
	}
}

func TestRenderFailedResult(t *testing.T) {
	body := Render(&analysis.Result{Error: "source_unavailable: sampler: open video: demo.mp4: no such file"})
	if !strings.Contains(body, "Analysis failed:") {
		t.Fatalf("failed result should render the error, got:\n%s", body)
	}
	if strings.Contains(body, "## Video Information") {
		t.Fatal("failed result should not render analysis sections")
	}
}

func TestRenderEmptyJourney(t *testing.T) {
	result := sampleResult()
	result.Journey = &analysis.Journey{}
	result.Comparison = &analysis.Comparison{}
	body := Render(result)
	if !strings.Contains(body, "No journey steps were reconstructed.") {
		t.Fatalf("empty journey should degrade gracefully:\n%s", body)
	}
	if !strings.Contains(body, "No transitions were detected.") {
		t.Fatalf("empty transitions should degrade gracefully:\n%s", body)
	}
}

func TestTransitionTitle(t *testing.T) {
	cases := map[analysis.TransitionType]string{
		analysis.TransitionFormSubmission: "Form Submission",
		analysis.TransitionModalOpen:      "Modal Open",
		analysis.TransitionPageChange:     "Page Change",
	}
	for kind, want := range cases {
		if got := TransitionTitle(kind); got != want {
			t.Fatalf("title for %q: got %q, want %q", kind, got, want)
		}
	}
}

func TestRecommendationTiers(t *testing.T) {
	result := sampleResult()
	result.Comparison.OverallScore = 0.9
	if body := Render(result); !strings.Contains(body, "matches the specification well") {
		t.Fatalf("high score recommendation missing:\n%s", body)
	}
	result.Comparison.OverallScore = 0.3
	if body := Render(result); !strings.Contains(body, "diverges significantly") {
		t.Fatalf("low score recommendation missing:\n%s", body)
	}
}
