package service

import (
	"strings"
	"unicode"
)

// Normalizer reduces a skill or activity label to a comparable key.
// It is an injectable pure strategy so label formatting conventions stay
// out of the scoring logic.
type Normalizer func(label string) string

// DefaultNormalizer lowercases the label and strips every non-alphanumeric
// rune, so "Node.js", "NodeJS" and "node js" all collapse to "nodejs".
func DefaultNormalizer(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeSet builds a set of normalized labels, dropping entries that
// normalize to the empty string.
func normalizeSet(labels []string, normalize Normalizer) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		key := normalize(label)
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}
