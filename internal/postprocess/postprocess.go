// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package postprocess turns a finished draft into a publish-ready artifact:
// deterministic Markdown and HTML renderings, derived metadata (slug,
// keywords, reading time, sentiment), and SEO tag injection. Given the same
// draft text and options it always produces the same two outputs.
package postprocess

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// ErrPostProcessing marks a fatal post-processing failure. Nothing
// partially formatted is returned alongside it.
var ErrPostProcessing = errors.New("post-processing failed")

const (
	defaultWordsPerMinute   = 200
	defaultMaxKeywords      = 8
	defaultDescriptionLimit = 160
)

// Options carries post-processing settings for one invocation. Now is the
// publication timestamp; passing it explicitly keeps the output a pure
// function of its inputs.
type Options struct {
	Config types.PostProcessConfig
	AddTOC bool
	Now    time.Time
}

func (o Options) wordsPerMinute() int {
	if o.Config.WordsPerMinute > 0 {
		return o.Config.WordsPerMinute
	}
	return defaultWordsPerMinute
}

func (o Options) maxKeywords() int {
	if o.Config.MaxKeywords > 0 {
		return o.Config.MaxKeywords
	}
	return defaultMaxKeywords
}

func (o Options) descriptionLimit() int {
	if o.Config.DescriptionLimit > 0 {
		return o.Config.DescriptionLimit
	}
	return defaultDescriptionLimit
}

// Process assembles a PublishedArtifact from the pipeline's final draft and
// fact-check report. The Markdown gets a reading-time header, an optional
// table of contents, and a trailing verification notes block; the HTML is a
// standalone document with SEO meta tags.
func Process(draft types.DraftArticle, report types.FactCheckReport, opts Options) (*types.PublishedArtifact, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("%w: draft has no title", ErrPostProcessing)
	}
	if strings.TrimSpace(draft.Intro) == "" && len(draft.Sections) == 0 {
		return nil, fmt.Errorf("%w: draft has no body", ErrPostProcessing)
	}

	markdown := RenderMarkdown(draft)

	meta := deriveMeta(markdown, draft.Title, opts)
	meta.Images = collectImages(draft)

	markdown = injectHeader(markdown, meta, opts.Now)
	if opts.AddTOC {
		markdown = InjectTOC(markdown)
	}
	if block := renderVerificationNotes(report); block != "" {
		markdown = strings.TrimRight(markdown, "\n") + "\n\n" + block
	}

	meta.Warnings = append(meta.Warnings, validateContent(markdown)...)

	html, err := RenderHTML(markdown, meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostProcessing, err)
	}

	return &types.PublishedArtifact{
		Meta:      meta,
		Markdown:  markdown,
		HTML:      html,
		FactCheck: report,
	}, nil
}

// MetaOverrides carries caller-supplied metadata for Reprocess. Zero fields
// keep the derived values; Slug preserves a saved artifact's identity
// across edit cycles.
type MetaOverrides struct {
	Title       string
	Slug        string
	Description string
	Keywords    []string
}

// Reprocess rebuilds an artifact from existing Markdown text, re-deriving
// metadata and the HTML rendering. The text itself is not mutated: no
// header, TOC, or verification block is injected, so edited posts round-trip
// unchanged.
func Reprocess(text string, overrides MetaOverrides, opts Options) (*types.PublishedArtifact, error) {
	markdown := strings.TrimSpace(text)
	if markdown == "" {
		return nil, fmt.Errorf("%w: empty input text", ErrPostProcessing)
	}
	markdown += "\n"

	title := overrides.Title
	if title == "" {
		title = firstHeading(markdown)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: text has no title heading and no title override", ErrPostProcessing)
	}

	meta := deriveMeta(markdown, title, opts)
	meta.Images = scanImages(markdown)
	if overrides.Slug != "" {
		meta.Slug = overrides.Slug
	}
	if overrides.Description != "" {
		meta.Description = truncate(overrides.Description, opts.descriptionLimit())
	}
	if len(overrides.Keywords) > 0 {
		keywords := overrides.Keywords
		if len(keywords) > opts.maxKeywords() {
			keywords = keywords[:opts.maxKeywords()]
		}
		meta.Keywords = keywords
	}

	meta.Warnings = validateContent(markdown)

	html, err := RenderHTML(markdown, meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostProcessing, err)
	}

	return &types.PublishedArtifact{
		Meta:     meta,
		Markdown: markdown,
		HTML:     html,
	}, nil
}

// deriveMeta computes the extracted metadata for a Markdown body.
func deriveMeta(markdown, title string, opts Options) types.ArtifactMeta {
	words := len(strings.Fields(markdown))
	return types.ArtifactMeta{
		Title:       title,
		Slug:        Slugify(title),
		Description: truncate(firstParagraph(markdown), opts.descriptionLimit()),
		Keywords:    ExtractKeywords(markdown, title, opts.maxKeywords()),
		ReadingTime: readingTime(words, opts.wordsPerMinute()),
		Sentiment:   ScoreSentiment(markdown),
		CreatedAt:   opts.Now,
	}
}

// readingTime estimates minutes from word count, never below one.
func readingTime(words, wordsPerMinute int) int {
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// injectHeader inserts the reading-time line right after the title heading.
func injectHeader(markdown string, meta types.ArtifactMeta, now time.Time) string {
	header := fmt.Sprintf("> **Reading time:** %d min | **Published:** %s",
		meta.ReadingTime, now.Format("January 2, 2006"))

	lines := strings.SplitN(markdown, "\n", 2)
	if strings.HasPrefix(lines[0], "# ") && len(lines) == 2 {
		return lines[0] + "\n\n" + header + "\n" + lines[1]
	}
	return header + "\n\n" + markdown
}

// renderVerificationNotes formats the fact-check report as the trailing
// Markdown block. An empty report renders nothing.
func renderVerificationNotes(report types.FactCheckReport) string {
	if len(report.Findings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Verification Notes\n\n")
	for _, f := range report.Findings {
		fmt.Fprintf(&b, "- **%s**: %s", f.Verdict, f.Claim)
		if f.Note != "" {
			fmt.Fprintf(&b, " - %s", f.Note)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// firstHeading returns the text of the first level-1 heading.
func firstHeading(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return ""
}

// firstParagraph returns the first body paragraph: the first block that is
// not a heading, image, or blockquote.
func firstParagraph(markdown string) string {
	for _, block := range strings.Split(markdown, "\n\n") {
		text := strings.TrimSpace(block)
		if text == "" {
			continue
		}
		switch text[0] {
		case '#', '!', '>', '`', '*', '-':
			continue
		}
		return strings.Join(strings.Fields(text), " ")
	}
	return ""
}

// truncate bounds s to limit bytes. The cut lands on a rune boundary, then
// backs up to a word boundary when one exists; the "..." suffix counts
// against the limit.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit - len("...")
	if cut < 1 {
		cut = 1
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	head := s[:cut]
	if s[cut] != ' ' {
		if i := strings.LastIndexByte(head, ' '); i > 0 {
			head = head[:i]
		}
	}
	return strings.TrimRight(head, " ") + "..."
}

// collectImages gathers every image reference from a draft.
func collectImages(draft types.DraftArticle) []types.ImageRef {
	var images []types.ImageRef
	if draft.FeaturedImage.URL != "" {
		images = append(images, draft.FeaturedImage)
	}
	for _, sec := range draft.Sections {
		if sec.Image.URL != "" {
			images = append(images, sec.Image)
		}
	}
	return images
}

var imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// scanImages extracts image references from raw Markdown text.
func scanImages(markdown string) []types.ImageRef {
	var images []types.ImageRef
	for _, m := range imagePattern.FindAllStringSubmatch(markdown, -1) {
		images = append(images, types.ImageRef{AltText: m[1], URL: m[2]})
	}
	return images
}

// validateContent runs the advisory content checks. Issues become artifact
// warnings, never errors.
func validateContent(markdown string) []string {
	var issues []string

	if len(markdown) < 1000 {
		issues = append(issues, "content may be too short for a comprehensive post")
	}
	if !strings.Contains(markdown, "![") {
		issues = append(issues, "no images found in content")
	}
	if !strings.Contains(markdown, "# ") {
		issues = append(issues, "no heading structure found")
	}
	lower := strings.ToLower(markdown)
	for _, tech := range []string{"code", "programming", "python", "javascript"} {
		if strings.Contains(lower, tech) {
			if !strings.Contains(markdown, "```") {
				issues = append(issues, "technical topic with no code examples")
			}
			break
		}
	}
	if !strings.Contains(markdown, "](http") {
		issues = append(issues, "no citations or references found")
	}

	return issues
}
