package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Clean normalizes a text fragment pulled out of catalog markup: non-breaking
// spaces become plain spaces, surrounding whitespace is trimmed, and leading
// colons left over from label splitting are dropped. Clean(Clean(s)) always
// equals Clean(s).
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.TrimLeft(s, ": \t\r\n")
	return strings.TrimSpace(s)
}

// Text flattens a selection to a single line, joining its text content with
// single spaces.
func Text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// CanonicalCode uppercases a course identifier and collapses its internal
// whitespace, so "csce  123" and "CSCE 123" name the same course.
func CanonicalCode(code string) string {
	return strings.Join(strings.Fields(strings.ToUpper(Clean(code))), " ")
}
