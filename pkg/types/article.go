// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ImageRef points at an illustration for a section or the post header.
type ImageRef struct {
	// URL is the image location.
	URL string `json:"url" yaml:"url"`

	// AltText describes the image for accessibility.
	AltText string `json:"alt_text" yaml:"alt_text"`

	// Attribution credits the image source (optional).
	Attribution string `json:"attribution,omitempty" yaml:"attribution,omitempty"`

	// Placeholder is true when the image collaborator failed and a stock
	// image was substituted.
	Placeholder bool `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Section is one heading plus its body text. Bodies are Markdown and may
// embed fenced code snippets.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`

	// Image is the section illustration appended by the illustrator stage.
	// Zero when the section has none.
	Image ImageRef `json:"image,omitempty" yaml:"image,omitempty"`
}

// DraftArticle is the in-progress post inside one pipeline run. The writer
// produces it, the editor and illustrator return revised copies, and the
// post-processor turns the final revision into a PublishedArtifact. It never
// outlives the run.
type DraftArticle struct {
	// Title is the post title, without the leading "# ".
	Title string `json:"title" yaml:"title"`

	// Intro is the body text before the first section heading.
	Intro string `json:"intro" yaml:"intro"`

	// Sections holds the ordered section headings and bodies.
	Sections []Section `json:"sections" yaml:"sections"`

	// FeaturedImage is the header image, found for the topic.
	FeaturedImage ImageRef `json:"featured_image,omitempty" yaml:"featured_image,omitempty"`
}

// WordCount returns the total word count across the title, intro, and
// section headings and bodies.
func (d DraftArticle) WordCount() int {
	n := countWords(d.Title) + countWords(d.Intro)
	for _, s := range d.Sections {
		n += countWords(s.Heading) + countWords(s.Body)
	}
	return n
}

func countWords(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\n' || r == '\t' || r == '\r':
			inWord = false
		case !inWord:
			inWord = true
			n++
		}
	}
	return n
}
