package cmd

import (
	"fmt"
	"os"

	"github.com/gocolly/colly/v2"
	"github.com/spf13/cobra"

	"github.com/anton-3/course-correct/pkg/scrape"
)

var c *colly.Collector

var cacheDir = "/course-correct/web-cache"
var noCache bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "course-correct",
	Short: "A tool for scraping the UNL course catalog",
	Long: `Scrapes course listings from the public UNL catalog into a format
suitable for analysis. Given a course code or a search phrase, this
application can generate a CSV file or send the results to BigQuery.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initColly)

	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the web cache (default: false)")
}

func initColly() {
	c = scrape.NewCollector()
	if !noCache {
		userCacheDir, _ := os.UserCacheDir()
		c.CacheDir = userCacheDir + cacheDir
	}
}
