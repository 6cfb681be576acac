// Package scraper fetches job posting text from a URL so users can paste a
// link instead of the full description.
package scraper

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

type Fetcher struct {
	timeout   time.Duration
	userAgent string
}

// FetcherConfig holds configuration for fetching behavior
type FetcherConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultConfig returns sensible default fetcher configuration
func DefaultConfig() FetcherConfig {
	return FetcherConfig{
		Timeout:   30 * time.Second,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

func NewFetcher() *Fetcher {
	return NewFetcherWithConfig(DefaultConfig())
}

func NewFetcherWithConfig(config FetcherConfig) *Fetcher {
	return &Fetcher{
		timeout:   config.Timeout,
		userAgent: config.UserAgent,
	}
}

// Selectors where job boards commonly put the posting body. Checked in
// order; the first non-empty hit wins, page body is the fallback.
var descriptionSelectors = []string{
	"div.job-description",
	"div.description",
	"section.description",
	"div#jobDescriptionText",
	"article",
}

// FetchJobPosting downloads a job posting page and returns its description
// text.
func (f *Fetcher) FetchJobPosting(url string) (string, error) {
	c := colly.NewCollector()
	c.SetRequestTimeout(f.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", f.userAgent)
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		log.Printf("🌐 Fetching job posting: %s", r.URL)
	})

	c.OnError(func(r *colly.Response, err error) {
		log.Printf("❌ Request failed: %s - Error: %v", r.Request.URL, err)
	})

	var description string
	var bodyText string

	for _, selector := range descriptionSelectors {
		c.OnHTML(selector, func(e *colly.HTMLElement) {
			if description == "" {
				description = strings.TrimSpace(e.Text)
			}
		})
	}
	c.OnHTML("body", func(e *colly.HTMLElement) {
		bodyText = strings.TrimSpace(e.Text)
	})

	if err := c.Visit(url); err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	c.Wait()

	if description == "" {
		description = bodyText
	}
	if description == "" {
		return "", fmt.Errorf("no job description text found at %s", url)
	}

	log.Printf("✅ Fetched %d characters from %s", len(description), url)
	return description, nil
}
