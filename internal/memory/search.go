package memory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var foldCaser = cases.Fold()

// normalizeText applies NFKC normalization and case folding so width
// variants and letter case don't affect matching.
func normalizeText(s string) string {
	return foldCaser.String(norm.NFKC.String(strings.TrimSpace(s)))
}

func containsNormalized(haystack, normalizedNeedle string) bool {
	return strings.Contains(normalizeText(haystack), normalizedNeedle)
}
