// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/blogsmith/internal/httputil"
	"github.com/pdiddy/blogsmith/pkg/types"
)

// serperSearchBase is the Serper search endpoint. Declared as a var so
// tests can substitute an httptest server.
var serperSearchBase = "https://google.serper.dev/search"

// SerperSearcher queries the Serper web search API.
type SerperSearcher struct {
	Client *http.Client
	Config types.SearchConfig
}

// NewSerperSearcher builds a Serper backend from search configuration.
func NewSerperSearcher(cfg types.SearchConfig) *SerperSearcher {
	return &SerperSearcher{
		Client: httputil.NewClient(cfg.HTTPConfig),
		Config: cfg,
	}
}

// serperRequest is the Serper JSON request body.
type serperRequest struct {
	Query      string `json:"q"`
	Country    string `json:"gl"`
	Language   string `json:"hl"`
	Num        int    `json:"num"`
	TimePeriod string `json:"timePeriod,omitempty"`
}

// serperResponse covers the organic-results portion of a Serper response.
type serperResponse struct {
	Organic []serperOrganic `json:"organic"`
}

type serperOrganic struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Date    string `json:"date"`
}

// Search issues one search request and maps the organic results to source
// entries.
func (s *SerperSearcher) Search(ctx context.Context, query string, dates types.DateRange) ([]types.SourceEntry, error) {
	if s.Config.APIKey == "" {
		return nil, fmt.Errorf("no serper api key configured")
	}

	num := s.Config.MaxResults
	if num <= 0 {
		num = 5
	}

	body := serperRequest{
		Query:      query,
		Country:    "us",
		Language:   "en",
		Num:        num,
		TimePeriod: timePeriod(dates),
	}

	headers := map[string]string{"X-API-KEY": s.Config.APIKey}

	var resp serperResponse
	if err := httputil.PostJSON(ctx, s.Client, serperSearchBase, headers, s.Config.HTTPConfig, body, &resp); err != nil {
		return nil, fmt.Errorf("serper search: %w", err)
	}

	var sources []types.SourceEntry
	for _, item := range resp.Organic {
		entry := types.SourceEntry{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		}
		if item.Date != "" {
			if t, err := time.Parse("Jan 2, 2006", item.Date); err == nil {
				entry.Date = t
			}
		}
		sources = append(sources, entry)
	}
	return sources, nil
}

// timePeriod maps a date range to Serper's custom time-period filter.
func timePeriod(dates types.DateRange) string {
	if dates.IsZero() {
		return ""
	}
	from := dates.From
	if from.IsZero() {
		from = dates.To.AddDate(-10, 0, 0)
	}
	to := dates.To
	if to.IsZero() {
		to = time.Now()
	}
	const day = "2006-01-02"
	return fmt.Sprintf("custom:%s:%s", from.Format(day), to.Format(day))
}
