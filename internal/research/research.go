// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research gathers web sources for a topic via a search
// collaborator. The researcher stage consumes it; a failed or empty search
// degrades to an empty finding rather than an error the pipeline would
// surface.
package research

import (
	"context"
	"errors"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// ErrUnavailable reports that the search collaborator errored or returned
// zero usable sources. The orchestrator absorbs it: the run proceeds with
// an empty ResearchFinding and the artifact is flagged unverified.
var ErrUnavailable = errors.New("research unavailable")

// Searcher queries the web search collaborator. Implementations issue a
// single request per call.
type Searcher interface {
	Search(ctx context.Context, query string, dates types.DateRange) ([]types.SourceEntry, error)
}

// Gather runs one search for the request's topic and focus and returns the
// usable sources. It wraps collaborator failures and empty result sets in
// ErrUnavailable.
func Gather(ctx context.Context, s Searcher, req types.GenerationRequest) ([]types.SourceEntry, error) {
	query := req.Topic
	if req.Focus != "" {
		query += " " + req.Focus
	}

	sources, err := s.Search(ctx, query, req.DateRange)
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}

	// Drop entries with no URL; they cannot be cited.
	usable := sources[:0]
	for _, src := range sources {
		if src.URL != "" {
			usable = append(usable, src)
		}
	}
	if len(usable) == 0 {
		return nil, ErrUnavailable
	}
	return usable, nil
}
