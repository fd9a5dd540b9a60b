package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseBlocks(t *testing.T, page string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc.Find("div.courseblock")
}

func TestParseCourseBlock(t *testing.T) {
	page := `<article>
		<div class="courseblock">
			<p class="courseblocktitle"><strong>CSCE 123&nbsp;&nbsp;Computer Science I</strong></p>
			<p class="courseblockdesc">Introduction to problem solving with computers.</p>
			<p><strong>Prerequisites:</strong> MATH 101 or equivalent.</p>
			<p><strong>Credit Hours:</strong> 3</p>
			<p><strong>Notes:</strong> Letter grade only.</p>
			<p><em>FALL/SPR</em></p>
		</div>
	</article>`

	course := ParseCourseBlock(parseBlocks(t, page).First(), "CSCE 123")

	require.Equal(t, "CSCE 123", course.Code)
	require.Equal(t, "Computer Science I", course.Title)
	require.Equal(t, "Introduction to problem solving with computers.", course.Description)
	require.Equal(t, "MATH 101 or equivalent.", course.Prerequisites)
	require.Equal(t, "Letter grade only.", course.Notes)
	require.Equal(t, "3", course.CreditHours)
	require.True(t, course.MinHours.Valid)
	require.Equal(t, 3.0, course.MinHours.Float64)
	require.Equal(t, 3.0, course.MaxHours.Float64)
	require.Equal(t, []string{"FALL", "SPR"}, course.Offered)
}

func TestParseCourseBlockArticleHeading(t *testing.T) {
	// Search result layouts hold the heading in the enclosing article
	page := `<article>
		<h3>CSCE 496  Special Topics</h3>
		<div class="courseblock">
			<p class="courseblockdesc">Topics vary by semester.</p>
			<p><strong>Credit Hours:</strong> 1 to 6 credit hours</p>
		</div>
	</article>`

	course := ParseCourseBlock(parseBlocks(t, page).First(), "special topics")

	require.Equal(t, "CSCE 496", course.Code)
	require.Equal(t, "Special Topics", course.Title)
	require.Equal(t, 1.0, course.MinHours.Float64)
	require.Equal(t, 6.0, course.MaxHours.Float64)
	require.Empty(t, course.Offered)
}

func TestParseCourseBlockDegradesToDefaults(t *testing.T) {
	page := `<div class="courseblock"><p>No recognizable structure at all.</p></div>`

	course := ParseCourseBlock(parseBlocks(t, page).First(), "underwater basket weaving")

	require.Equal(t, "underwater basket weaving", course.Code)
	require.Equal(t, "", course.Title)
	require.Equal(t, "", course.Description)
	require.Equal(t, "", course.Prerequisites)
	require.Equal(t, "", course.CreditHours)
	require.False(t, course.MinHours.Valid)
	require.False(t, course.MaxHours.Valid)
	require.Equal(t, []string{}, course.Offered)
}

func TestParseCourseBlockLastLabelWins(t *testing.T) {
	page := `<div class="courseblock">
		<p class="courseblocktitle"><strong>AGRO 153  Soil Science</strong></p>
		<p><strong>Notes:</strong> First value.</p>
		<p><strong>Notes:</strong> Second value.</p>
	</div>`

	course := ParseCourseBlock(parseBlocks(t, page).First(), "AGRO 153")
	require.Equal(t, "Second value.", course.Notes)
}

func TestParseCourseBlockOfferedFromLabel(t *testing.T) {
	// No em span; the labeled paragraph still feeds the offered list
	page := `<div class="courseblock">
		<p class="courseblocktitle"><strong>MATH 208  Applied Calculus III</strong></p>
		<p><strong>Offered:</strong> FALL / SPR</p>
	</div>`

	course := ParseCourseBlock(parseBlocks(t, page).First(), "MATH 208")
	require.Equal(t, []string{"FALL", "SPR"}, course.Offered)
}

func TestSearchPageNotFound(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><p>Your search returned nothing.</p></body></html>`))
	require.NoError(t, err)

	var courses []CourseRecord
	page := searchPage{query: "underwater basket weaving", courses: &courses}
	err = page.UnmarshalDoc(doc)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Contains(t, err.Error(), "underwater basket weaving")
	require.Empty(t, courses)
}

func TestSearchPageDocumentOrder(t *testing.T) {
	page := `<div class="courseblock">
			<p class="courseblocktitle"><strong>CSCE 123  Computer Science I</strong></p>
		</div>
		<div class="courseblock">
			<p class="courseblocktitle"><strong>CSCE 156  Computer Science II</strong></p>
		</div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	var courses []CourseRecord
	require.NoError(t, searchPage{query: "computer science", courses: &courses}.UnmarshalDoc(doc))

	require.Len(t, courses, 2)
	require.Equal(t, "CSCE 123", courses[0].Code)
	require.Equal(t, "CSCE 156", courses[1].Code)
}

func TestSearchPageUrlEncoding(t *testing.T) {
	urls := searchPage{query: "CSCE 123"}.Urls()
	require.Len(t, urls, 1)
	require.True(t, strings.HasSuffix(urls[0], "search=CSCE%20123"))
}

func TestQueryResultShape(t *testing.T) {
	one := QueryResult{courses: []CourseRecord{{Code: "CSCE 123"}}}
	course, ok := one.Single()
	require.True(t, ok)
	require.Equal(t, "CSCE 123", course.Code)

	many := QueryResult{courses: []CourseRecord{{Code: "CSCE 123"}, {Code: "CSCE 156"}}}
	_, ok = many.Single()
	require.False(t, ok)
	require.Len(t, many.All(), 2)
}

func TestStandardizeDefaults(t *testing.T) {
	course := Standardize("CSCE 123", "", RawFieldMap{})
	require.Equal(t, "CSCE 123", course.Code)
	require.Equal(t, "", course.Title)
	require.Equal(t, "", course.Prerequisites)
	require.Equal(t, "", course.GradingOption)
	require.Equal(t, "", course.PrerequisiteFor)
	require.False(t, course.MinHours.Valid)
}

func TestStandardizeIgnoresUnknownLabels(t *testing.T) {
	course := Standardize("CSCE 123", "Computer Science I", RawFieldMap{
		"Description":       "Algorithms and data.",
		"Some Future Label": "should not leak anywhere",
	})
	require.Equal(t, "Algorithms and data.", course.Description)
	require.Equal(t, "Computer Science I", course.Title)
}
