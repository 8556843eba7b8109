// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SentimentLabel is the advisory tone classification of a finished post.
// Always one of positive, neutral, or negative; never absent.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// ArtifactMeta is the metadata attached to a PublishedArtifact. It is
// written as YAML front matter in the saved Markdown file and indexed in
// the artifact catalog.
type ArtifactMeta struct {
	// Title is the post title. Never empty on a published artifact.
	Title string `json:"title" yaml:"title"`

	// Slug is the filename-safe identifier derived from the title. Once
	// persisted it is the artifact's durable identity.
	Slug string `json:"slug" yaml:"slug"`

	// Description is the SEO description, derived from the first paragraph.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Keywords is the bounded keyword set extracted from the body.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// ReadingTime is the estimated reading time in minutes, always >= 1.
	ReadingTime int `json:"reading_time" yaml:"reading_time"`

	// Sentiment is the lexicon-scored tone label.
	Sentiment SentimentLabel `json:"sentiment" yaml:"sentiment"`

	// Images lists every image referenced by the post, placeholders included.
	Images []ImageRef `json:"images,omitempty" yaml:"images,omitempty"`

	// RunID identifies the pipeline run that produced the artifact.
	RunID string `json:"run_id,omitempty" yaml:"run_id,omitempty"`

	// CreatedAt is the time the artifact was assembled.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Unverified is true when the run completed with no usable research
	// sources.
	Unverified bool `json:"unverified,omitempty" yaml:"unverified,omitempty"`

	// Warnings records degraded stages and advisory validation issues.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// PublishedArtifact is the finished, persistable post: both renderings plus
// metadata and the fact-check report.
type PublishedArtifact struct {
	Meta ArtifactMeta `json:"meta" yaml:"meta"`

	// Markdown is the canonical text, including the verification notes block.
	Markdown string `json:"markdown" yaml:"markdown"`

	// HTML is the standalone HTML document rendered from Markdown.
	HTML string `json:"html" yaml:"html"`

	// FactCheck is the attached report. Empty when the fact-checker degraded.
	FactCheck FactCheckReport `json:"fact_check,omitempty" yaml:"fact_check,omitempty"`
}
