package report

import (
	"os"
	"strconv"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/gocarina/gocsv"

	"github.com/anton-3/course-correct/pkg/scrape"
)

// courseView lays a record out as one CSV row, columns in the canonical
// field order.
type courseView struct {
	CourseCode      string `csv:"course_code"`
	CourseTitle     string `csv:"course_title"`
	Prerequisites   string `csv:"prerequisites"`
	Description     string `csv:"description"`
	Notes           string `csv:"notes"`
	CreditHours     string `csv:"credit_hours"`
	MinHours        string `csv:"min_hours"`
	MaxHours        string `csv:"max_hours"`
	MinPerSemester  string `csv:"min_credits_per_semester"`
	MaxPerSemester  string `csv:"max_credits_per_semester"`
	MaxPerDegree    string `csv:"max_credits_per_degree"`
	GradingOption   string `csv:"grading_option"`
	Offered         string `csv:"offered"`
	Groups          string `csv:"groups"`
	Ace             string `csv:"ace"`
	LabFee          string `csv:"course_and_laboratory_fee"`
	Experiential    string `csv:"experiential_learning"`
	PrerequisiteFor string `csv:"prerequisite_for"`
}

func toCourseView(c scrape.CourseRecord) courseView {
	return courseView{
		CourseCode:      c.Code,
		CourseTitle:     c.Title,
		Prerequisites:   c.Prerequisites,
		Description:     c.Description,
		Notes:           c.Notes,
		CreditHours:     c.CreditHours,
		MinHours:        parseNullFloat(c.MinHours),
		MaxHours:        parseNullFloat(c.MaxHours),
		MinPerSemester:  c.MinPerSemester,
		MaxPerSemester:  c.MaxPerSemester,
		MaxPerDegree:    c.MaxPerDegree,
		GradingOption:   c.GradingOption,
		Offered:         strings.Join(c.Offered, "/"),
		Groups:          c.Groups,
		Ace:             c.Ace,
		LabFee:          c.LabFee,
		Experiential:    c.Experiential,
		PrerequisiteFor: c.PrerequisiteFor,
	}
}

func parseNullFloat(n bigquery.NullFloat64) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Float64, 'f', -1, 64)
}

// Summary is the compact projection tool consumers read: just the code,
// title, and description.
type Summary struct {
	CourseCode  string `csv:"course_code"`
	CourseTitle string `csv:"course_title"`
	Description string `csv:"description"`
}

func Summarize(c scrape.CourseRecord) Summary {
	return Summary{
		CourseCode:  c.Code,
		CourseTitle: c.Title,
		Description: c.Description,
	}
}

// WriteCourses writes every record to name.csv, one row per course, rows in
// the order the catalog returned them.
func WriteCourses(name string, courses []scrape.CourseRecord) error {
	rows := make([]courseView, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, toCourseView(c))
	}
	return WriteCsv(rows, name+".csv")
}

func WriteCsv(in interface{}, fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = gocsv.Marshal(in, file)
	if err != nil {
		panic(err)
	}
	return file.Close()
}
