package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hireflow/backend/screening"
)

// FetchPortfolioTool reads the visible text of a candidate's portfolio page
type FetchPortfolioTool struct {
	pages screening.PageFetcher
}

// NewFetchPortfolioTool creates a new portfolio page tool
func NewFetchPortfolioTool(pages screening.PageFetcher) *FetchPortfolioTool {
	return &FetchPortfolioTool{pages: pages}
}

func (t *FetchPortfolioTool) Name() string {
	return "fetch_portfolio_page"
}

func (t *FetchPortfolioTool) Description() string {
	return `Fetch a candidate's public portfolio or profile page and return its visible text.
Scripts, styles and markup are removed.`
}

func (t *FetchPortfolioTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"url"}, map[string]interface{}{
		"url": property("string", "An http or https URL"),
	})
}

// FetchPortfolioInput represents the input for the fetch tool
type FetchPortfolioInput struct {
	URL string `json:"url"`
}

// FetchPortfolioOutput is the fetched page text
type FetchPortfolioOutput struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

func (t *FetchPortfolioTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in FetchPortfolioInput
	if err := json.Unmarshal(input, &in); err != nil {
		return Fail(fmt.Sprintf("invalid input: %v", err))
	}
	if in.URL == "" {
		return Fail("url is required")
	}

	text, err := t.pages.FetchText(ctx, in.URL)
	if err != nil {
		return Fail(fmt.Sprintf("fetch failed: %v", err))
	}
	return Succeed(FetchPortfolioOutput{URL: in.URL, Text: text})
}
