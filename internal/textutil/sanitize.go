package textutil

import "strings"

// NormalizeWhitespace collapses all whitespace runs (including newlines from
// multi-line OCR output) into single spaces and trims the result.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// ContainsFold reports whether substr occurs in s under Unicode case folding.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// EqualFoldAny reports whether value matches any candidate case-insensitively.
func EqualFoldAny(value string, candidates []string) bool {
	for _, candidate := range candidates {
		if strings.EqualFold(value, candidate) {
			return true
		}
	}
	return false
}
