package database

import (
	"io"

	"github.com/anton-3/course-correct/pkg/scrape"
)

type Database interface {
	io.Closer
	SaveCourses([]scrape.CourseRecord) error
}
