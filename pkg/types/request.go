// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the blogsmith pipeline.
package types

import (
	"fmt"
	"time"
)

// Tone selects the writing voice for the generated post.
type Tone string

const (
	ToneProfessional   Tone = "professional"
	ToneConversational Tone = "conversational"
	ToneTechnical      Tone = "technical"
	ToneInformative    Tone = "informative"
	ToneFriendly       Tone = "friendly"
)

// validTones is the set of accepted Tone values.
var validTones = map[Tone]bool{
	ToneProfessional:   true,
	ToneConversational: true,
	ToneTechnical:      true,
	ToneInformative:    true,
	ToneFriendly:       true,
}

// LengthBand is the advisory word-count band for the post. The band shapes
// the writer prompt only; actual output length is never enforced.
type LengthBand string

const (
	LengthShort  LengthBand = "short"  // 500-1000 words
	LengthMedium LengthBand = "medium" // 1000-2000 words
	LengthLong   LengthBand = "long"   // 2000+ words
)

// WordRange returns the advisory word-count bounds for the band. A zero max
// means open-ended.
func (l LengthBand) WordRange() (min, max int) {
	switch l {
	case LengthShort:
		return 500, 1000
	case LengthLong:
		return 2000, 0
	default:
		return 1000, 2000
	}
}

// DateRange bounds the research stage to sources published inside the
// window. A zero From or To leaves that side open.
type DateRange struct {
	From time.Time `json:"from,omitempty" yaml:"from,omitempty"`
	To   time.Time `json:"to,omitempty" yaml:"to,omitempty"`
}

// IsZero reports whether no date bound is set.
func (d DateRange) IsZero() bool {
	return d.From.IsZero() && d.To.IsZero()
}

// RecentRange returns the trailing window named by keyword ("week",
// "month", or "year") ending at now.
func RecentRange(keyword string, now time.Time) (DateRange, error) {
	switch keyword {
	case "week":
		return DateRange{From: now.AddDate(0, 0, -7), To: now}, nil
	case "month":
		return DateRange{From: now.AddDate(0, -1, 0), To: now}, nil
	case "year":
		return DateRange{From: now.AddDate(-1, 0, 0), To: now}, nil
	default:
		return DateRange{}, fmt.Errorf("unknown recency window %q: use week, month, or year", keyword)
	}
}

// GenerationRequest holds the parameters for one pipeline run. Immutable
// once submitted; the run never writes back into it.
type GenerationRequest struct {
	// Topic is the subject of the post. Required.
	Topic string `json:"topic" yaml:"topic"`

	// Focus narrows the topic (e.g. "practical applications"). Optional.
	Focus string `json:"focus,omitempty" yaml:"focus,omitempty"`

	// Tone selects the writing voice.
	Tone Tone `json:"tone" yaml:"tone"`

	// Length is the advisory word-count band.
	Length LengthBand `json:"length" yaml:"length"`

	// Creativity maps to the provider's sampling temperature, 0.1-1.0.
	Creativity float64 `json:"creativity" yaml:"creativity"`

	// DateRange restricts research to sources published inside the window.
	DateRange DateRange `json:"date_range,omitempty" yaml:"date_range,omitempty"`

	// AddTOC inserts a table of contents after the first heading.
	AddTOC bool `json:"add_toc" yaml:"add_toc"`

	// SEOOptimized asks the writer for an SEO-friendly title and headings.
	SEOOptimized bool `json:"seo_optimized" yaml:"seo_optimized"`
}

// Validate checks the request and fills defaults for optional fields.
func (r *GenerationRequest) Validate() error {
	if r.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if r.Focus == "" {
		r.Focus = "latest trends and developments"
	}
	if r.Tone == "" {
		r.Tone = ToneProfessional
	}
	if !validTones[r.Tone] {
		return fmt.Errorf("unknown tone %q", r.Tone)
	}
	if r.Length == "" {
		r.Length = LengthMedium
	}
	switch r.Length {
	case LengthShort, LengthMedium, LengthLong:
	default:
		return fmt.Errorf("unknown length band %q", r.Length)
	}
	if r.Creativity == 0 {
		r.Creativity = 0.7
	}
	if r.Creativity < 0.1 || r.Creativity > 1.0 {
		return fmt.Errorf("creativity must be between 0.1 and 1.0, got %g", r.Creativity)
	}
	return nil
}
