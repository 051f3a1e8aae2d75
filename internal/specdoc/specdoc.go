package specdoc

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Document is the loosely-typed specification produced upstream. Every field
// is optional; ExpectedFlows applies the documented fallback rules.
type Document struct {
	UserFlows []string  `json:"user_flows"`
	Features  []Feature `json:"features"`
	Workflows []string  `json:"workflows"`
}

// Feature appears in specs either as an object carrying a flow description or
// as a bare string.
type Feature struct {
	Name string `json:"name"`
	Flow string `json:"flow"`
}

// UnmarshalJSON accepts both the object and plain-string feature forms.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		f.Name = ""
		f.Flow = plain
		return nil
	}

	type featureObject Feature
	var obj featureObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("feature must be a string or an object: %w", err)
	}
	*f = Feature(obj)
	return nil
}

// Load reads and parses a specification document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}
	return Parse(data)
}

// Parse decodes a specification document from JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse spec: %w", err)
	}
	return &doc, nil
}

// DefaultFlows are assumed when a specification declares no flows at all, so
// coverage always has a non-zero denominator.
func DefaultFlows() []string {
	return []string{
		"user authentication",
		"main navigation",
		"form submission",
		"data display",
	}
}

// ExpectedFlows collects the flows a journey is measured against: direct
// user_flows first, then per-feature flow strings, then workflows. The
// defaults apply only when all three sources are empty.
func (d *Document) ExpectedFlows() []string {
	var flows []string
	if d != nil {
		for _, flow := range d.UserFlows {
			if flow = strings.TrimSpace(flow); flow != "" {
				flows = append(flows, flow)
			}
		}
		for _, feature := range d.Features {
			if flow := strings.TrimSpace(feature.Flow); flow != "" {
				flows = append(flows, flow)
			}
		}
		for _, flow := range d.Workflows {
			if flow = strings.TrimSpace(flow); flow != "" {
				flows = append(flows, flow)
			}
		}
	}
	if len(flows) == 0 {
		return DefaultFlows()
	}
	return flows
}

// Sample returns the example enhanced-spec document shipped for
// experimentation.
func Sample() []byte {
	sample := map[string]any{
		"user_flows": []string{
			"User authentication flow",
			"Main dashboard navigation",
			"Form submission process",
			"Data visualization display",
		},
		"features": []map[string]string{
			{"name": "Login", "flow": "User enters credentials and submits"},
			{"name": "Dashboard", "flow": "User views main dashboard"},
			{"name": "Forms", "flow": "User fills and submits forms"},
		},
		"expected_screens": []string{
			"Login Screen",
			"Dashboard",
			"Form Page",
			"Success Page",
		},
	}
	data, _ := json.MarshalIndent(sample, "", "  ")
	return append(data, '\n')
}
