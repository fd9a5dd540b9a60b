package scrape

import (
	"regexp"
	"strings"
)

// codePattern recognizes headings like "CSCE 123H  Honors Topics" where a
// subject token and course number precede the title.
var codePattern = regexp.MustCompile(`^([A-Z&]{2,}\s+\d+[A-Z]?)\s+(.*)$`)

// A splitStrategy tries one way of separating a course code from a heading.
// Strategies never fail: ok reports whether the strategy applied, and the
// next entry in splitStrategies is consulted otherwise.
type splitStrategy func(heading, knownCode string) (code, title string, ok bool)

var splitStrategies = []splitStrategy{
	splitKnownPrefix,
	splitCodePattern,
}

// SplitTitle separates a heading into a course code and a human-readable
// title, preferring the caller's known code when the heading starts with it.
// It always returns a pair: with no recognizable code, the whole heading
// becomes the title and knownCode is returned as the code.
func SplitTitle(heading, knownCode string) (string, string) {
	h := Clean(heading)
	for _, split := range splitStrategies {
		if code, title, ok := split(h, knownCode); ok {
			return code, title
		}
	}
	return knownCode, h
}

func splitKnownPrefix(heading, knownCode string) (string, string, bool) {
	if knownCode == "" || !strings.HasPrefix(strings.ToUpper(heading), strings.ToUpper(knownCode)) {
		return "", "", false
	}
	remainder := strings.Trim(heading[len(knownCode):], " -:\u00a0")
	return knownCode, Clean(remainder), true
}

func splitCodePattern(heading, _ string) (string, string, bool) {
	m := codePattern.FindStringSubmatch(heading)
	if m == nil {
		return "", "", false
	}
	return Clean(m[1]), Clean(m[2]), true
}
