package scrape

import "cloud.google.com/go/bigquery"

// Labels of the fields harvested from a course block, exactly as they appear
// in the catalog markup.
const (
	LabelPrerequisites   = "Prerequisites"
	LabelDescription     = "Description"
	LabelNotes           = "Notes"
	LabelCreditHours     = "Credit Hours"
	LabelMinPerSemester  = "Min credits per semester"
	LabelMaxPerSemester  = "Max credits per semester"
	LabelMaxPerDegree    = "Max credits per degree"
	LabelGradingOption   = "Grading Option"
	LabelOffered         = "Offered"
	LabelGroups          = "Groups"
	LabelAce             = "ACE"
	LabelLabFee          = "Course and Laboratory Fee"
	LabelExperiential    = "Experiential Learning"
	LabelPrerequisiteFor = "Prerequisite for"
)

// RawFieldMap holds the labeled fields captured from one course block before
// standardization. When the same label appears twice, the later value wins.
type RawFieldMap map[string]string

// CourseRecord is one catalog entry projected onto the canonical schema.
// Every record carries every field, in this order; fields missing from the
// source block are empty strings, an empty term list, or unset hour bounds.
type CourseRecord struct {
	Code            string               `db:"code"`
	Title           string               `db:"title"`
	Prerequisites   string               `db:"prerequisites"`
	Description     string               `db:"description"`
	Notes           string               `db:"notes"`
	CreditHours     string               `db:"credit_hours"`
	MinHours        bigquery.NullFloat64 `db:"min_hours"`
	MaxHours        bigquery.NullFloat64 `db:"max_hours"`
	MinPerSemester  string               `db:"min_per_semester"`
	MaxPerSemester  string               `db:"max_per_semester"`
	MaxPerDegree    string               `db:"max_per_degree"`
	GradingOption   string               `db:"grading_option"`
	Offered         []string             `db:"-"`
	Groups          string               `db:"course_groups"`
	Ace             string               `db:"ace"`
	LabFee          string               `db:"lab_fee"`
	Experiential    string               `db:"experiential_learning"`
	PrerequisiteFor string               `db:"prerequisite_for"`
}

// Standardize projects the raw fields of one block onto the canonical
// schema. Labels absent from fields come out as empty strings; the code and
// title always come from the splitter, never from the map. The derived
// fields (Offered, MinHours, MaxHours) are filled by the post-processing
// step, not here.
func Standardize(code, title string, fields RawFieldMap) CourseRecord {
	return CourseRecord{
		Code:            code,
		Title:           title,
		Prerequisites:   fields[LabelPrerequisites],
		Description:     fields[LabelDescription],
		Notes:           fields[LabelNotes],
		CreditHours:     fields[LabelCreditHours],
		MinPerSemester:  fields[LabelMinPerSemester],
		MaxPerSemester:  fields[LabelMaxPerSemester],
		MaxPerDegree:    fields[LabelMaxPerDegree],
		GradingOption:   fields[LabelGradingOption],
		Groups:          fields[LabelGroups],
		Ace:             fields[LabelAce],
		LabFee:          fields[LabelLabFee],
		Experiential:    fields[LabelExperiential],
		PrerequisiteFor: fields[LabelPrerequisiteFor],
	}
}
