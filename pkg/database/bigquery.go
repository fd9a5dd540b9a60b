package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"

	"github.com/anton-3/course-correct/pkg/scrape"
)

type BigQuery struct {
	ctx       context.Context
	client    *bigquery.Client
	dataset   *bigquery.Dataset
	datasetID string
}

func NewBigQuery(projectID, datasetID string) (BigQuery, error) {
	var bq BigQuery

	// Set up BigQuery
	ctx := context.Background()
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return bq, fmt.Errorf("failed to create client: %v", err)
	}

	dataset := client.Dataset(datasetID)
	if err := dataset.Create(ctx, nil); err != nil {
		if !isDuplicateError(err) {
			return bq, fmt.Errorf("failed to create dataset: %v", err)
		}
	}

	bq = BigQuery{ctx, client, dataset, datasetID}
	return bq, nil
}

// InsertCourses merges scraped catalog records into the courses table.
// InferSchema handles CourseRecord directly: the offered terms become a
// repeated field and the nullable hour bounds stay nullable.
func (bq BigQuery) InsertCourses(courses []scrape.CourseRecord) error {
	schema, err := bigquery.InferSchema(scrape.CourseRecord{})
	if err != nil {
		return fmt.Errorf("failed to infer schema: %v", err)
	}

	// Get a reference to the table
	table := bq.dataset.Table("courses")
	if err := table.Create(bq.ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		if !isDuplicateError(err) {
			return fmt.Errorf("failed to create table: %v", err)
		}
	}

	// Create a temp table
	// Uses a different table each time: https://stackoverflow.com/a/51998193/5623874
	tempName := "courses_" + strconv.Itoa(int(time.Now().Unix()))
	newArrivals := bq.dataset.Table(tempName)
	if err := newArrivals.Create(bq.ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		if !isDuplicateError(err) {
			return fmt.Errorf("failed to create arrivals table: %v", err)
		}
	}

	// Upload data
	u := newArrivals.Inserter()
	if err := u.Put(bq.ctx, courses); err != nil {
		return fmt.Errorf("failed to insert rows: %v", err)
	}

	// Merge data
	q := bq.client.Query(fmt.Sprintf(`
		MERGE %[1]s.courses t
		USING %[1]s.%[2]s s
		ON t.code = s.code
		  AND t.title = s.title
		WHEN NOT MATCHED THEN
		  INSERT ROW`, bq.datasetID, tempName))
	if _, err := q.Run(bq.ctx); err != nil {
		return fmt.Errorf("failed to execute query: %v", err)
	}

	// Don't delete the temp table so we can manually audit insertions
	return nil
}

func isDuplicateError(err error) bool {
	if e, ok := err.(*googleapi.Error); ok {
		return e.Code == 409
	} else {
		return false
	}
}
