// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SourceEntry is one web source gathered by the researcher.
type SourceEntry struct {
	// Title is the page title as returned by the search API.
	Title string `json:"title" yaml:"title"`

	// URL is the source location.
	URL string `json:"url" yaml:"url"`

	// Snippet is the search-result excerpt.
	Snippet string `json:"snippet" yaml:"snippet"`

	// Date is the publish date when the search API reports one.
	Date time.Time `json:"date,omitempty" yaml:"date,omitempty"`
}

// ResearchFinding holds the researcher stage's output: the gathered sources
// and the model's synthesized research report. Consumed by the writer and
// fact-checker stages. An empty finding (no sources) marks the run as
// unverified but never aborts it.
type ResearchFinding struct {
	// Sources lists the web sources backing the report.
	Sources []SourceEntry `json:"sources" yaml:"sources"`

	// Report is the researcher's synthesized summary of the sources.
	Report string `json:"report" yaml:"report"`
}

// IsEmpty reports whether no usable sources were gathered.
func (f ResearchFinding) IsEmpty() bool {
	return len(f.Sources) == 0
}
