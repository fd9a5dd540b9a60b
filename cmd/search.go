package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anton-3/course-correct/pkg/database"
	"github.com/anton-3/course-correct/pkg/report"
	"github.com/anton-3/course-correct/pkg/scrape"
)

var dbFile = "/course-correct/catalog.db"

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog and export the matches",
	Long: `Given a course code such as "CSCE 123" or a search phrase such as
"algorithms", this command fetches the matching catalog entries, archives
them in a local SQLite database, and writes them to a CSV file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := args[0] // "CSCE 123" or "algorithms" etc.

		// Scrape the data
		result, err := scrape.SearchCourses(c, query)
		if err != nil {
			log.Fatalln(err)
		}

		if course, ok := result.Single(); ok {
			s := report.Summarize(course)
			log.Println("Found", s.CourseCode+":", s.CourseTitle)
		} else {
			log.Println("Found", result.Len(), "courses")
			for _, course := range result.All() {
				s := report.Summarize(course)
				log.Println(" ", s.CourseCode+":", s.CourseTitle)
			}
		}

		// Save all the data to the database
		userCacheDir, _ := os.UserCacheDir()
		sqlite := database.NewSqlite(userCacheDir + dbFile)
		if err := sqlite.SaveCourses(result.All()); err != nil {
			panic(err)
		}
		_ = sqlite.Close()
		log.Println("Saved to database", dbFile)

		// Write to CSV
		name := strings.ReplaceAll(scrape.CanonicalCode(query), " ", "")
		if err := report.WriteCourses(name, result.All()); err != nil {
			panic(err)
		}
		log.Println("Wrote to file", name+".csv")
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
