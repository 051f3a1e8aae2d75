package ocr

import "regexp"

// Vocabulary holds the fixed UI term tables the extractor recognizes in OCR
// text. The three families mirror how screens are usually composed: controls
// the user activates, fields the user fills, and elements the user navigates
// by. Inject a custom Vocabulary in tests to exercise the extractor without
// the full default tables.
type Vocabulary struct {
	Actions    []string
	Fields     []string
	Navigation []string
}

// DefaultVocabulary returns the built-in UI term tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Actions: []string{
			"Submit", "Save", "Cancel", "Delete", "Edit", "Create",
			"Login", "Logout", "Sign Up", "Sign In",
			"Continue", "Next", "Previous", "Back", "Finish", "Start", "Stop",
			"Add", "Remove", "Update", "Refresh", "Search", "Filter", "Sort",
		},
		Fields: []string{
			"Email", "Password", "Username", "Name", "Address", "Phone",
			"First Name", "Last Name", "Company", "Title", "Description",
		},
		Navigation: []string{
			"Home", "Dashboard", "Settings", "Profile", "Help", "About",
			"Menu", "Navigation", "Sidebar", "Header", "Footer",
		},
	}
}

// Terms returns every vocabulary term across all three families.
func (v Vocabulary) Terms() []string {
	terms := make([]string, 0, len(v.Actions)+len(v.Fields)+len(v.Navigation))
	terms = append(terms, v.Actions...)
	terms = append(terms, v.Fields...)
	terms = append(terms, v.Navigation...)
	return terms
}

type termMatcher struct {
	term    string
	pattern *regexp.Regexp
}

// compile builds case-insensitive whole-word matchers. Matches are recorded
// under the vocabulary's canonical spelling so downstream classification does
// not depend on OCR casing.
func (v Vocabulary) compile() []termMatcher {
	terms := v.Terms()
	matchers := make([]termMatcher, 0, len(terms))
	for _, term := range terms {
		matchers = append(matchers, termMatcher{
			term:    term,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
		})
	}
	return matchers
}
