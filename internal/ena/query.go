// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import "strings"

// grammarTokens are substrings that identify a query already written in
// the portal's search grammar; such queries pass through untouched.
var grammarTokens = []string{
	"tax_eq", "tax_tree", "study_accession", "sample_accession",
	"run_accession", "=",
}

// NormalizeQuery rewrites a raw user query into portal search grammar.
// Queries already in grammar form pass through unchanged, a string of
// digits becomes a tax_tree() taxonomy match, and anything else becomes a
// scientific_name match. Embedded quotes are not escaped.
func NormalizeQuery(raw string) string {
	for _, tok := range grammarTokens {
		if strings.Contains(raw, tok) {
			return raw
		}
	}
	if trimmed := strings.TrimSpace(raw); isAllDigits(trimmed) {
		return "tax_tree(" + trimmed + ")"
	}
	return `scientific_name="` + raw + `"`
}

// isAllDigits reports whether s is non-empty and entirely ASCII digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
