// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"fmt"
	"time"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// GeneratePayload is the JSON body for POST /api/posts.
type GeneratePayload struct {
	Topic        string  `json:"topic" binding:"required"`
	Focus        string  `json:"focus"`
	Tone         string  `json:"tone"`
	Length       string  `json:"length"`
	Creativity   float64 `json:"creativity"`
	DateFrom     string  `json:"date_from"`
	DateTo       string  `json:"date_to"`
	Recent       string  `json:"recent"`
	AddTOC       bool    `json:"add_toc"`
	SEOOptimized bool    `json:"seo_optimized"`
}

// toRequest maps the payload to a GenerationRequest. Date bounds use
// YYYY-MM-DD.
func (p GeneratePayload) toRequest() (types.GenerationRequest, error) {
	req := types.GenerationRequest{
		Topic:        p.Topic,
		Focus:        p.Focus,
		Tone:         types.Tone(p.Tone),
		Length:       types.LengthBand(p.Length),
		Creativity:   p.Creativity,
		AddTOC:       p.AddTOC,
		SEOOptimized: p.SEOOptimized,
	}
	if p.Recent != "" {
		r, err := types.RecentRange(p.Recent, time.Now())
		if err != nil {
			return req, err
		}
		req.DateRange = r
	}
	const day = "2006-01-02"
	if p.DateFrom != "" {
		t, err := time.Parse(day, p.DateFrom)
		if err != nil {
			return req, fmt.Errorf("invalid date_from: %w", err)
		}
		req.DateRange.From = t
	}
	if p.DateTo != "" {
		t, err := time.Parse(day, p.DateTo)
		if err != nil {
			return req, fmt.Errorf("invalid date_to: %w", err)
		}
		req.DateRange.To = t
	}
	return req, nil
}

// EditPayload is the JSON body for PUT /api/posts/:slug.
type EditPayload struct {
	Markdown    string   `json:"markdown" binding:"required"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// ReprocessPayload is the JSON body for POST /api/reprocess (preview, no
// save).
type ReprocessPayload struct {
	Markdown    string   `json:"markdown" binding:"required"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// PostSummary is one row in the post listing.
type PostSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	ReadingTime int      `json:"reading_time"`
	Sentiment   string   `json:"sentiment"`
	CreatedAt   string   `json:"created_at"`
	Unverified  bool     `json:"unverified,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// PostResponse is a full artifact.
type PostResponse struct {
	PostSummary
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

func toSummary(meta types.ArtifactMeta) PostSummary {
	return PostSummary{
		Slug:        meta.Slug,
		Title:       meta.Title,
		Description: meta.Description,
		Keywords:    meta.Keywords,
		ReadingTime: meta.ReadingTime,
		Sentiment:   string(meta.Sentiment),
		CreatedAt:   meta.CreatedAt.Format(time.RFC3339),
		Unverified:  meta.Unverified,
		Warnings:    meta.Warnings,
	}
}

func toPostResponse(artifact *types.PublishedArtifact) PostResponse {
	return PostResponse{
		PostSummary: toSummary(artifact.Meta),
		Markdown:    artifact.Markdown,
		HTML:        artifact.HTML,
	}
}
