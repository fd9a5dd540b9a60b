package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/pubsub"
	"github.com/spf13/cobra"

	"github.com/anton-3/course-correct/pkg/database"
	"github.com/anton-3/course-correct/pkg/scrape"
)

const (
	projectID = "course-correct-8f4d2"
	datasetID = "catalog"
	topicID   = "catalog-refreshed"
)

var dryRun bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync [query...]",
	Short: "Scrape catalog entries to BigQuery",
	Long: `This command takes one or more search queries (course codes or
phrases), scrapes every matching catalog entry, and merges the records
into BigQuery.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Scrape every query, skipping the ones with no matches
		var courses []scrape.CourseRecord
		for _, query := range args {
			result, err := scrape.SearchCourses(c.Clone(), query)
			if err != nil {
				var notFound *scrape.NotFoundError
				if errors.As(err, &notFound) {
					log.Println("Warning:", err)
					continue
				}
				panic(err)
			}
			courses = append(courses, result.All()...)
		}
		log.Println("Found", len(courses), "records")

		// Connect to BigQuery
		bq, err := database.NewBigQuery(projectID, datasetID)
		if err != nil {
			panic(fmt.Errorf("failed to connect to bigquery: %v", err))
		}

		// Insert (merge) the course records
		if !dryRun {
			if err := bq.InsertCourses(courses); err != nil {
				panic(fmt.Errorf("failed to insert courses: %v", err))
			}
		} else {
			fmt.Println("Dry run: data will not be inserted")
		}

		// Connect to PubSub
		ctx := context.Background()
		client, err := pubsub.NewClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Failed to create client: %v", err)
		}

		msg, err := json.Marshal(struct {
			Queries []string `json:"queries"`
		}{args})
		if err != nil {
			log.Fatalf("Failed to create message: %v", err)
		}

		// Publish an event
		topic := client.Topic(topicID)
		res := topic.Publish(ctx, &pubsub.Message{Data: msg})
		if _, err := res.Get(ctx); err != nil {
			log.Fatalf("Failed to publish message: %v", err)
		}

		fmt.Println("Done.")
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Run without modifying the database (default: false)")
}
