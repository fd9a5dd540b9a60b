package database

import (
	"database/sql"
	"log"
	"strings"

	"github.com/go-gorp/gorp/v3"
	_ "github.com/mattn/go-sqlite3"

	"github.com/anton-3/course-correct/pkg/persist"
	"github.com/anton-3/course-correct/pkg/scrape"
)

type Sqlite struct {
	db    *sql.DB
	dbmap *gorp.DbMap
}

// courseRow flattens a CourseRecord for the local archive: the offered terms
// collapse to their slash-joined form and unset hour bounds are stored as
// nulls.
type courseRow struct {
	ID              uint64          `db:"id, primarykey, autoincrement"`
	Code            string          `db:"code"`
	Title           string          `db:"title"`
	Prerequisites   string          `db:"prerequisites"`
	Description     string          `db:"description"`
	Notes           string          `db:"notes"`
	CreditHours     string          `db:"credit_hours"`
	MinHours        sql.NullFloat64 `db:"min_hours"`
	MaxHours        sql.NullFloat64 `db:"max_hours"`
	MinPerSemester  string          `db:"min_per_semester"`
	MaxPerSemester  string          `db:"max_per_semester"`
	MaxPerDegree    string          `db:"max_per_degree"`
	GradingOption   string          `db:"grading_option"`
	Offered         string          `db:"offered"`
	Groups          string          `db:"course_groups"`
	Ace             string          `db:"ace"`
	LabFee          string          `db:"lab_fee"`
	Experiential    string          `db:"experiential_learning"`
	PrerequisiteFor string          `db:"prerequisite_for"`
}

func toCourseRow(c scrape.CourseRecord) courseRow {
	return courseRow{
		Code:            c.Code,
		Title:           c.Title,
		Prerequisites:   c.Prerequisites,
		Description:     c.Description,
		Notes:           c.Notes,
		CreditHours:     c.CreditHours,
		MinHours:        sql.NullFloat64{Float64: c.MinHours.Float64, Valid: c.MinHours.Valid},
		MaxHours:        sql.NullFloat64{Float64: c.MaxHours.Float64, Valid: c.MaxHours.Valid},
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

func NewSqlite(file string) Sqlite {
	sqlite := Sqlite{}

	// Initialize the database connection
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		log.Panic("Unable to connect to database: ", err)
	}
	sqlite.db = db

	// Initialize the database mapping, creating the table if it's our first run
	dbmap := &gorp.DbMap{Db: db, Dialect: gorp.SqliteDialect{}}
	dbmap.AddTableWithName(courseRow{}, "courses").SetUniqueTogether("Code", "Title")
	if err := dbmap.CreateTablesIfNotExists(); err != nil {
		log.Panic("Unable to create tables: ", err)
	}
	sqlite.dbmap = dbmap

	return sqlite
}

func (s Sqlite) SaveCourses(courses []scrape.CourseRecord) error {
	tx, err := s.dbmap.Begin()
	if err != nil {
		return err
	}
	insert := persist.InsertIgnoringDupes(tx)
	for i := range courses {
		row := toCourseRow(courses[i])
		if err := insert.Insert(&row); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s Sqlite) Close() error {
	return s.db.Close()
}
