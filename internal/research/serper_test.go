// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdiddy/blogsmith/pkg/types"
)

const sampleSerperResponse = `{
  "organic": [
    {
      "title": "Understanding RAG pipelines",
      "link": "https://example.com/rag",
      "snippet": "Retrieval augmented generation explained.",
      "date": "Mar 4, 2026"
    },
    {
      "title": "RAG in production",
      "link": "https://example.com/rag-prod",
      "snippet": "Lessons learned."
    }
  ]
}`

func TestSerperSearch(t *testing.T) {
	var gotBody serperRequest
	var gotKey string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		fmt.Fprint(w, sampleSerperResponse)
	}))
	defer ts.Close()

	origBase := serperSearchBase
	serperSearchBase = ts.URL
	defer func() { serperSearchBase = origBase }()

	s := NewSerperSearcher(types.SearchConfig{APIKey: "sk_test", MaxResults: 7})
	sources, err := s.Search(context.Background(), "rag pipelines", types.DateRange{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotKey != "sk_test" {
		t.Errorf("X-API-KEY = %q", gotKey)
	}
	if gotBody.Query != "rag pipelines" || gotBody.Num != 7 || gotBody.Country != "us" {
		t.Errorf("request body = %+v", gotBody)
	}
	if gotBody.TimePeriod != "" {
		t.Errorf("TimePeriod = %q, want empty for open range", gotBody.TimePeriod)
	}

	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}
	if sources[0].URL != "https://example.com/rag" {
		t.Errorf("source 0 = %+v", sources[0])
	}
	wantDate := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	if !sources[0].Date.Equal(wantDate) {
		t.Errorf("source 0 date = %v, want %v", sources[0].Date, wantDate)
	}
	if !sources[1].Date.IsZero() {
		t.Errorf("source 1 date = %v, want zero", sources[1].Date)
	}
}

func TestSerperSearchDateRange(t *testing.T) {
	var gotBody serperRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, `{"organic": []}`)
	}))
	defer ts.Close()

	origBase := serperSearchBase
	serperSearchBase = ts.URL
	defer func() { serperSearchBase = origBase }()

	s := NewSerperSearcher(types.SearchConfig{APIKey: "sk_test"})
	dates := types.DateRange{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	if _, err := s.Search(context.Background(), "q", dates); err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotBody.TimePeriod != "custom:2025-01-01:2025-06-30" {
		t.Errorf("TimePeriod = %q", gotBody.TimePeriod)
	}
	if gotBody.Num != 5 {
		t.Errorf("Num = %d, want default 5", gotBody.Num)
	}
}

func TestSerperSearchErrors(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		s := NewSerperSearcher(types.SearchConfig{})
		if _, err := s.Search(context.Background(), "q", types.DateRange{}); err == nil {
			t.Error("expected an error without an API key")
		}
	})

	t.Run("http error status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		origBase := serperSearchBase
		serperSearchBase = ts.URL
		defer func() { serperSearchBase = origBase }()

		s := NewSerperSearcher(types.SearchConfig{APIKey: "sk_test"})
		if _, err := s.Search(context.Background(), "q", types.DateRange{}); err == nil {
			t.Error("expected an error on HTTP 403")
		}
	})
}
