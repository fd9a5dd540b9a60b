package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"cloud.google.com/go/bigquery"
)

var numberPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// SplitOffered turns an offered-terms capture like "FALL / SPR" into its
// ordered term tokens. An absent or empty capture yields an empty list.
func SplitOffered(raw string) []string {
	raw = strings.Join(strings.Fields(Clean(raw)), "")
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, "/")
}

// ParseCreditHours extracts the numeric bounds from credit-hour text. A
// single number sets both bounds, two or more set min then max in reading
// order, and none leaves both unset.
func ParseCreditHours(raw string) (minHours, maxHours bigquery.NullFloat64) {
	nums := numberPattern.FindAllString(Clean(raw), -1)
	switch {
	case len(nums) >= 2:
		minHours = parseNullFloat(nums[0])
		maxHours = parseNullFloat(nums[1])
	case len(nums) == 1:
		minHours = parseNullFloat(nums[0])
		maxHours = minHours
	}
	return minHours, maxHours
}

func parseNullFloat(s string) bigquery.NullFloat64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return bigquery.NullFloat64{}
	}
	return bigquery.NullFloat64{Float64: f, Valid: true}
}
