package utils

import "strings"

// SplitSeatList splits a comma separated seat string into trimmed, upper-cased tokens.
// Empty entries are dropped before trimming, so " , " still yields a blank token.
func SplitSeatList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p == "" {
			continue
		}
		out = append(out, strings.TrimSpace(strings.ToUpper(p)))
	}
	return out
}

// IsYes reports whether an answer means yes. Anything but "yes" is no.
func IsYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// SafeFilenamePart keeps letters, digits and dashes.
func SafeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
