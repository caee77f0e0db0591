package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	UserAgent = "treasure-medians/1.0 (github.com/pfrederiksen/treasure-medians)"
	Timeout   = 30 * time.Second
)

// Fetcher retrieves a page and returns it as a navigable document
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Scraper fetches wiki pages over HTTP
type Scraper struct {
	client    *http.Client
	userAgent string
}

// New creates a new Scraper with the default timeout and User-Agent
func New() *Scraper {
	return NewWithOptions(Timeout, UserAgent)
}

// NewWithOptions creates a Scraper with a custom timeout and User-Agent.
// Zero values fall back to the defaults.
func NewWithOptions(timeout time.Duration, userAgent string) *Scraper {
	if timeout <= 0 {
		timeout = Timeout
	}
	if userAgent == "" {
		userAgent = UserAgent
	}
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Fetch downloads url and parses the response body as HTML.
// Any non-200 response is an error.
func (s *Scraper) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ParseDocument(resp.Body)
}

// ParseDocument parses raw markup into a document
func ParseDocument(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}
