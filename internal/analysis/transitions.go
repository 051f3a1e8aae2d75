package analysis

import (
	"fmt"
	"strings"

	"journeylens/internal/textutil"
)

// Ruleset holds the term lists the classifier consults. Matching is
// case-insensitive against whole element names and extracted text.
type Ruleset struct {
	AuthenticationTerms []string
	SubmitTerms         []string
	NavigationTerms     []string
	SuccessIndicators   []string
	ErrorIndicators     []string
}

// DefaultRuleset returns the built-in classification vocabulary.
func DefaultRuleset() Ruleset {
	return Ruleset{
		AuthenticationTerms: []string{"Login", "Sign In"},
		SubmitTerms:         []string{"Submit"},
		NavigationTerms:     []string{"Menu", "Navigation"},
		SuccessIndicators:   []string{"Success"},
		ErrorIndicators:     []string{"Error", "Failed"},
	}
}

var transitionDescriptions = map[TransitionType]string{
	TransitionAuthentication: "User logged in or accessed authentication screen",
	TransitionFormSubmission: "Form was submitted successfully",
	TransitionNavigation:     "User navigated to different section",
	TransitionModalOpen:      "Modal or popup window opened",
	TransitionModalClose:     "Modal or popup window closed",
	TransitionErrorState:     "Error state encountered",
	TransitionPageChange:     "Page or view changed",
}

// Detector turns a sampled frame sequence into classified transitions.
type Detector struct {
	rules Ruleset
}

// NewDetector builds a detector. A zero-valued ruleset selects the default
// vocabulary.
func NewDetector(rules Ruleset) *Detector {
	if len(rules.AuthenticationTerms) == 0 && len(rules.SubmitTerms) == 0 &&
		len(rules.NavigationTerms) == 0 && len(rules.SuccessIndicators) == 0 &&
		len(rules.ErrorIndicators) == 0 {
		rules = DefaultRuleset()
	}
	return &Detector{rules: rules}
}

// Detect walks consecutive frame pairs and emits a transition for every pair
// whose destination is a key frame. The first frame never produces one.
func (d *Detector) Detect(frames []Frame) []Transition {
	var transitions []Transition
	for i := 1; i < len(frames); i++ {
		prev := frames[i-1]
		curr := frames[i]
		if !curr.IsKeyFrame {
			continue
		}
		kind := d.Classify(prev, curr)
		transitions = append(transitions, Transition{
			FromFrame:     prev.Number,
			ToFrame:       curr.Number,
			FromTimestamp: prev.Timestamp,
			ToTimestamp:   curr.Timestamp,
			Type:          kind,
			Description:   describeTransition(kind, curr.UIElements),
			Confidence:    confidenceFor(curr.ChangeScore),
		})
	}
	return transitions
}

// Classify picks the transition type for a frame pair. Rules apply in a fixed
// precedence order; the first match wins and page_change is the fallback.
func (d *Detector) Classify(prev, curr Frame) TransitionType {
	switch {
	case anyElementMatches(curr.UIElements, d.rules.AuthenticationTerms):
		return TransitionAuthentication
	case anyElementMatches(prev.UIElements, d.rules.SubmitTerms) && textContainsAny(curr.ExtractedText, d.rules.SuccessIndicators):
		return TransitionFormSubmission
	case anyElementMatches(curr.UIElements, d.rules.NavigationTerms):
		return TransitionNavigation
	case len(curr.UIElements) > len(prev.UIElements):
		return TransitionModalOpen
	case len(curr.UIElements) < len(prev.UIElements):
		return TransitionModalClose
	case textContainsAny(curr.ExtractedText, d.rules.ErrorIndicators):
		return TransitionErrorState
	default:
		return TransitionPageChange
	}
}

func anyElementMatches(elements, terms []string) bool {
	for _, element := range elements {
		if textutil.EqualFoldAny(element, terms) {
			return true
		}
	}
	return false
}

func textContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if textutil.ContainsFold(text, term) {
			return true
		}
	}
	return false
}

func describeTransition(kind TransitionType, elements []string) string {
	base := transitionDescriptions[kind]
	if len(elements) == 0 {
		return base
	}
	shown := elements
	if len(shown) > 3 {
		shown = shown[:3]
	}
	return fmt.Sprintf("%s (elements: %s)", base, strings.Join(shown, ", "))
}

func confidenceFor(changeScore float64) float64 {
	confidence := 2 * changeScore
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}
