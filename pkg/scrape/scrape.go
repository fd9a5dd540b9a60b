package scrape

import (
	"bytes"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// CatalogUrl is the root of the public course catalog.
const CatalogUrl = "https://catalog.unl.edu/"

// fetchTimeout bounds the outbound request; parsing is local and fast, so
// the fetch is the only operation that can block.
const fetchTimeout = 10 * time.Second

type Unmarshaler interface {
	UnmarshalDoc(doc *goquery.Document) error
}

type Scrapable interface {
	Urls() []string
	Unmarshaler
}

// NewCollector returns a collector configured for the catalog.
func NewCollector() *colly.Collector {
	c := colly.NewCollector()
	c.SetRequestTimeout(fetchTimeout)
	return c
}

// Scrape visits each url of s and hands the parsed document to s. A failed
// fetch comes back as a TransportError; errors from UnmarshalDoc pass
// through unchanged.
func Scrape(c *colly.Collector, s Scrapable) error {
	var e error
	c = c.Clone() // same collector but without old callbacks
	c.SetRequestTimeout(fetchTimeout)
	c.OnResponse(func(res *colly.Response) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body))
		if err != nil {
			e = err
			return
		}
		e = s.UnmarshalDoc(doc)
	})

	for _, url := range s.Urls() {
		if err := c.Visit(url); err != nil {
			return &TransportError{Url: url, Err: err}
		}
		if e != nil {
			return e
		}
	}
	return e
}
