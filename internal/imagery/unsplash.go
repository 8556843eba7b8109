// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/blogsmith/internal/httputil"
	"github.com/pdiddy/blogsmith/pkg/types"
)

// unsplashSearchBase is the Unsplash photo search endpoint. Declared as a
// var so tests can substitute an httptest server.
var unsplashSearchBase = "https://api.unsplash.com/search/photos"

// UnsplashFinder queries the Unsplash photo search API.
type UnsplashFinder struct {
	Client *http.Client
	Config types.ImageConfig
}

// NewUnsplashFinder builds an Unsplash backend from image configuration.
func NewUnsplashFinder(cfg types.ImageConfig) *UnsplashFinder {
	return &UnsplashFinder{
		Client: httputil.NewClient(cfg.HTTPConfig),
		Config: cfg,
	}
}

type unsplashResponse struct {
	Results []unsplashPhoto `json:"results"`
}

type unsplashPhoto struct {
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Regular string `json:"regular"`
	} `json:"urls"`
	User struct {
		Name string `json:"name"`
	} `json:"user"`
}

// Find issues one photo search and returns the top result.
func (f *UnsplashFinder) Find(ctx context.Context, query string) (types.ImageRef, error) {
	if f.Config.AccessKey == "" {
		return types.ImageRef{}, fmt.Errorf("no unsplash access key configured")
	}

	params := url.Values{
		"query":    {query},
		"per_page": {"1"},
	}
	headers := map[string]string{
		"Authorization": "Client-ID " + f.Config.AccessKey,
	}

	var resp unsplashResponse
	reqURL := unsplashSearchBase + "?" + params.Encode()
	if err := httputil.GetJSON(ctx, f.Client, reqURL, headers, f.Config.HTTPConfig, &resp); err != nil {
		return types.ImageRef{}, fmt.Errorf("unsplash search: %w", err)
	}

	if len(resp.Results) == 0 {
		return types.ImageRef{}, fmt.Errorf("no unsplash results for %q", query)
	}

	photo := resp.Results[0]
	alt := photo.AltDescription
	if alt == "" {
		alt = query
	}
	attribution := "Unsplash"
	if photo.User.Name != "" {
		attribution = photo.User.Name + " / Unsplash"
	}
	return types.ImageRef{
		URL:         photo.URLs.Regular,
		AltText:     alt,
		Attribution: attribution,
	}, nil
}
