package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// searchUrl is the catalog search endpoint; the query is appended with
// spaces encoded as %20 and everything else left alone, matching what the
// catalog's own search form sends.
const searchUrl = CatalogUrl + "search/?caturl=%2Fundergraduate&scontext=courses&search="

var offeredPattern = regexp.MustCompile(`(?i)FALL|SPR|SUMMER`)

// TransportError reports a failed catalog fetch: a timeout, a refused
// connection, or a non-2xx status.
type TransportError struct {
	Url string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch course info: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NotFoundError reports a search that fetched fine but matched no course
// blocks.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no courses found for '%s'", e.Query)
}

// QueryResult is the outcome of a successful catalog search: either a
// single matched course or an ordered list of them, document order
// preserved.
type QueryResult struct {
	courses []CourseRecord
}

// Single returns the matched course when the search matched exactly one.
func (r QueryResult) Single() (CourseRecord, bool) {
	if len(r.courses) == 1 {
		return r.courses[0], true
	}
	return CourseRecord{}, false
}

// All returns every matched course in document order.
func (r QueryResult) All() []CourseRecord { return r.courses }

func (r QueryResult) Len() int { return len(r.courses) }

// searchPage unmarshals a catalog search results page into course records.
type searchPage struct {
	query   string
	courses *[]CourseRecord
}

func (p searchPage) Urls() []string {
	return []string{searchUrl + strings.ReplaceAll(p.query, " ", "%20")}
}

func (p searchPage) UnmarshalDoc(doc *goquery.Document) error {
	blocks := doc.Find("div.courseblock")
	if blocks.Length() == 0 {
		return &NotFoundError{Query: p.query}
	}
	blocks.Each(func(_ int, block *goquery.Selection) {
		*p.courses = append(*p.courses, ParseCourseBlock(block, p.query))
	})
	return nil
}

// SearchCourses fetches the catalog search results for query and extracts a
// standardized record from every course block on the page. The fetch is the
// only step that can fail; a malformed block degrades field-by-field to the
// schema defaults instead of aborting the query. Each call is independent,
// so concurrent searches need no coordination.
func SearchCourses(c *colly.Collector, query string) (QueryResult, error) {
	var courses []CourseRecord
	if err := Scrape(c, searchPage{query: query, courses: &courses}); err != nil {
		return QueryResult{}, err
	}
	return QueryResult{courses: courses}, nil
}

// ParseCourseBlock extracts one course block into a canonical record. The
// search query serves as the fallback course code when the heading carries
// no recognizable one.
func ParseCourseBlock(block *goquery.Selection, query string) CourseRecord {
	code, title := blockHeading(block, query)
	if code == "" {
		code = query
	}

	fields := RawFieldMap{}
	if desc := block.Find("p.courseblockdesc").First(); desc.Length() > 0 {
		fields[LabelDescription] = Clean(Text(desc))
	}

	// Every paragraph with an emphasized label contributes one raw field:
	// the label is the emphasized text minus its trailing colon, the value
	// is the rest of the paragraph. A label appearing twice keeps its last
	// value.
	block.Find("p").Each(func(_ int, p *goquery.Selection) {
		strong := p.Find("strong").First()
		if strong.Length() == 0 {
			return
		}
		label := strings.TrimRight(Text(strong), ":")
		value := strings.ReplaceAll(Text(p), Text(strong), "")
		fields[label] = Clean(value)
	})

	// The offered terms usually live in their own em span rather than a
	// labeled paragraph; prefer the span when both are present.
	offeredRaw := fields[LabelOffered]
	block.Find("em").EachWithBreak(func(_ int, em *goquery.Selection) bool {
		if text := strings.TrimSpace(em.Text()); offeredPattern.MatchString(text) {
			offeredRaw = text
			return false
		}
		return true
	})

	record := Standardize(code, title, fields)
	record.Offered = SplitOffered(offeredRaw)
	record.MinHours, record.MaxHours = ParseCreditHours(fields[LabelCreditHours])
	return record
}

func blockHeading(block *goquery.Selection, query string) (string, string) {
	if el := block.Find("p.courseblocktitle").First(); el.Length() > 0 {
		return headingParts(Text(el), query)
	}
	// Search result layouts keep the heading in the enclosing article
	// instead of the block itself.
	if h3 := block.Closest("article").Find("h3").First(); h3.Length() > 0 {
		return headingParts(Text(h3), query)
	}
	return query, ""
}

// headingParts picks the known code handed to the splitter: the
// pattern-matched token when the heading has one, the original query
// otherwise.
func headingParts(heading, query string) (string, string) {
	if m := codePattern.FindStringSubmatch(Clean(heading)); m != nil {
		return SplitTitle(heading, Clean(m[1]))
	}
	return SplitTitle(heading, query)
}
