package analysis

import (
	"fmt"
	"strings"

	"journeylens/internal/specdoc"
)

// commonFlowTerms name flows considered ordinary regardless of what the
// specification lists, so routine steps are not flagged as unexpected.
var commonFlowTerms = []string{"login", "submit", "navigation", "error"}

// CompareWithSpec scores the observed journey against the expected flows of
// the specification document.
func CompareWithSpec(journey Journey, doc *specdoc.Document) Comparison {
	expected := doc.ExpectedFlows()

	loweredSteps := make([]string, len(journey.Steps))
	for i, step := range journey.Steps {
		loweredSteps[i] = strings.ToLower(step)
	}

	matched := 0
	var missing []string
	loweredExpected := make([]string, 0, len(expected))
	for _, flow := range expected {
		lowered := strings.ToLower(flow)
		loweredExpected = append(loweredExpected, lowered)
		if anyStepContains(loweredSteps, lowered) {
			matched++
		} else {
			missing = append(missing, flow)
		}
	}

	coverage := 0.0
	if len(expected) > 0 {
		coverage = float64(matched) / float64(len(expected))
	}

	var unexpected []string
	allowed := append(append([]string(nil), commonFlowTerms...), loweredExpected...)
	for i, step := range journey.Steps {
		if !stepMentionsAny(loweredSteps[i], allowed) {
			unexpected = append(unexpected, step)
		}
	}

	var timing []string
	for _, transition := range journey.Transitions {
		if transition.Type == TransitionErrorState {
			timing = append(timing, fmt.Sprintf("Error at %.1fs may have interrupted the expected flow", transition.ToTimestamp))
		}
	}

	deviations := append([]string(nil), journey.Issues...)

	penalty := 0.1 * float64(len(journey.Issues))
	if penalty > 0.5 {
		penalty = 0.5
	}
	score := coverage - penalty
	if score < 0 {
		score = 0
	}

	return Comparison{
		SpecCoverage:    coverage,
		MissingFlows:    missing,
		UnexpectedFlows: unexpected,
		TimingIssues:    timing,
		UIDeviations:    deviations,
		OverallScore:    score,
	}
}

func anyStepContains(loweredSteps []string, loweredFlow string) bool {
	for _, step := range loweredSteps {
		if strings.Contains(step, loweredFlow) {
			return true
		}
	}
	return false
}

func stepMentionsAny(loweredStep string, loweredTerms []string) bool {
	for _, term := range loweredTerms {
		if term != "" && strings.Contains(loweredStep, term) {
			return true
		}
	}
	return false
}
