package utils

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxPageBytes caps how much of a fetched page is read
const maxPageBytes = 5 * 1024 * 1024

var (
	blankRuns   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns = regexp.MustCompile(`\n\s*\n+`)
)

// textOnly drops every tag, and the content of script and style elements
var textOnly = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// PageFetcher downloads a public web page and reduces it to readable text
type PageFetcher struct {
	client *http.Client
}

// NewPageFetcher creates a fetcher on the given client
func NewPageFetcher(client *http.Client) *PageFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	redirecting := *client
	redirecting.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= 5 {
			return fmt.Errorf("too many redirects")
		}
		return nil
	}
	return &PageFetcher{client: &redirecting}
}

// FetchText returns the visible text of the page at pageURL
func (p *PageFetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		return "", fmt.Errorf("unsupported url %q", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if err := CheckResponse(resp, "page"); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	return HTMLToText(string(body)), nil
}

// HTMLToText strips scripts, styles and tags and collapses whitespace
func HTMLToText(page string) string {
	text := html.UnescapeString(textOnly.Sanitize(page))
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = blankRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
