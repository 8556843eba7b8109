// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package postprocess

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// languageFencePattern matches opening code fences with a language tag, so
// stray wrappers like ```markdown can be stripped without touching real
// snippet fences.
var languageFencePattern = regexp.MustCompile("(?m)^```(markdown|md)\\s*$")

// CleanMarkdown strips code-fence wrappers models sometimes put around the
// whole document. Fenced snippets inside the text are preserved.
func CleanMarkdown(raw string) string {
	text := strings.TrimSpace(raw)

	// Whole-document wrapper: ```markdown ... ``` or ``` ... ```.
	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		first := strings.Index(text, "\n")
		if first > 0 {
			fence := strings.TrimSpace(text[3:first])
			// Only unwrap when the opening fence is bare or tagged as
			// markdown; otherwise the document itself is a snippet.
			if fence == "" || fence == "markdown" || fence == "md" {
				inner := text[first+1 : len(text)-3]
				// Unwrap only if the inner text contains no further fences
				// or an even count (balanced snippets).
				if strings.Count(inner, "```")%2 == 0 {
					text = strings.TrimSpace(inner)
				}
			}
		}
	}

	text = languageFencePattern.ReplaceAllString(text, "```")
	return strings.TrimSpace(text)
}

// ParseArticle splits Markdown into a DraftArticle: the level-1 heading
// becomes the title, text before the first level-2 heading becomes the
// intro, and each level-2 heading starts a section. Level-3+ headings stay
// inside section bodies, as do fenced code blocks. When no level-1 heading
// exists the fallback title is used, so a parsed draft always has one.
func ParseArticle(markdown, fallbackTitle string) types.DraftArticle {
	text := CleanMarkdown(markdown)
	lines := strings.Split(text, "\n")

	draft := types.DraftArticle{}
	var body []string
	currentHeading := ""
	inFence := false
	sawSection := false

	flush := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if !sawSection {
			draft.Intro = content
		} else {
			draft.Sections = append(draft.Sections, types.Section{
				Heading: currentHeading,
				Body:    content,
			})
		}
		body = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			body = append(body, line)
			continue
		}
		if inFence {
			body = append(body, line)
			continue
		}

		if strings.HasPrefix(trimmed, "# ") && draft.Title == "" && !sawSection {
			draft.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			continue
		}

		if strings.HasPrefix(trimmed, "## ") {
			flush()
			sawSection = true
			currentHeading = strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))
			continue
		}

		body = append(body, line)
	}
	flush()

	if draft.Title == "" {
		draft.Title = fallbackTitle
	}
	return draft
}

// RenderMarkdown produces the canonical Markdown for a draft: title,
// featured image, intro, then each section with its illustration. The same
// draft always renders to the same text.
func RenderMarkdown(draft types.DraftArticle) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", draft.Title)

	if draft.FeaturedImage.URL != "" {
		writeImage(&b, draft.FeaturedImage)
	}
	if draft.Intro != "" {
		b.WriteString(draft.Intro)
		b.WriteString("\n\n")
	}

	for _, sec := range draft.Sections {
		fmt.Fprintf(&b, "## %s\n\n", sec.Heading)
		if sec.Image.URL != "" {
			writeImage(&b, sec.Image)
		}
		if sec.Body != "" {
			b.WriteString(sec.Body)
			b.WriteString("\n\n")
		}
	}

	return strings.TrimSpace(b.String()) + "\n"
}

func writeImage(b *strings.Builder, img types.ImageRef) {
	alt := img.AltText
	if alt == "" {
		alt = "illustration"
	}
	fmt.Fprintf(b, "![%s](%s)\n", alt, img.URL)
	if img.Attribution != "" {
		fmt.Fprintf(b, "*Image: %s*\n", img.Attribution)
	}
	b.WriteString("\n")
}
