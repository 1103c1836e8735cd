package quiz

import "strings"

// Letter answers map into fixed option slots regardless of how many options
// the question actually has. A letter pointing past the option list falls
// through and is compared as literal text.
var letterSlots = map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}

// NormalizeAnswer canonicalizes a raw submitted answer for comparison: a bare
// "A".."D" selects the option at that slot, anything else is taken literally,
// then the value is trimmed and lowercased. An absent answer normalizes to ""
// which never equals a normalized non-empty correct answer.
func NormalizeAnswer(raw string, options []string) string {
	if idx, ok := letterSlots[raw]; ok && idx < len(options) {
		raw = options[idx]
	}
	return strings.ToLower(strings.TrimSpace(raw))
}
