// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package postprocess

import (
	"strings"
	"testing"

	"github.com/pdiddy/blogsmith/pkg/types"
)

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare text unchanged",
			raw:  "# Title\n\nBody text.",
			want: "# Title\n\nBody text.",
		},
		{
			name: "markdown wrapper stripped",
			raw:  "```markdown\n# Title\n\nBody text.\n```",
			want: "# Title\n\nBody text.",
		},
		{
			name: "bare fence wrapper stripped",
			raw:  "```\n# Title\n\nBody.\n```",
			want: "# Title\n\nBody.",
		},
		{
			name: "inner snippet fences survive unwrapping",
			raw:  "```markdown\n# Title\n\n```go\nfmt.Println()\n```\n\nAfter.\n```",
			want: "# Title\n\n```go\nfmt.Println()\n```\n\nAfter.",
		},
		{
			name: "language snippet is not a wrapper",
			raw:  "```python\nprint(1)\n```",
			want: "```python\nprint(1)\n```",
		},
		{
			name: "stray md fence line normalized",
			raw:  "# Title\n\n```md\nnot really fenced\n```",
			want: "# Title\n\n```\nnot really fenced\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanMarkdown(tt.raw); got != tt.want {
				t.Errorf("CleanMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseArticle(t *testing.T) {
	raw := `# Observability on a Budget

Monitoring does not have to be expensive.

Small teams can get far with open tools.

## Start with Logs

Structured logs first.

## Then Metrics

Counters and gauges.
`
	draft := ParseArticle(raw, "fallback")

	if draft.Title != "Observability on a Budget" {
		t.Errorf("Title = %q", draft.Title)
	}
	if !strings.Contains(draft.Intro, "Monitoring does not have to be expensive.") ||
		!strings.Contains(draft.Intro, "Small teams can get far") {
		t.Errorf("Intro = %q", draft.Intro)
	}
	if len(draft.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(draft.Sections))
	}
	if draft.Sections[0].Heading != "Start with Logs" || draft.Sections[0].Body != "Structured logs first." {
		t.Errorf("section 0 = %+v", draft.Sections[0])
	}
	if draft.Sections[1].Heading != "Then Metrics" {
		t.Errorf("section 1 heading = %q", draft.Sections[1].Heading)
	}
}

func TestParseArticleFallbackTitle(t *testing.T) {
	draft := ParseArticle("Just a paragraph with no headings.", "Machine Learning Trends")
	if draft.Title != "Machine Learning Trends" {
		t.Errorf("Title = %q, want fallback", draft.Title)
	}
	if draft.Intro != "Just a paragraph with no headings." {
		t.Errorf("Intro = %q", draft.Intro)
	}
}

func TestParseArticleFencedHeadings(t *testing.T) {
	raw := "# Title\n\nIntro.\n\n## Real Section\n\n```\n## not a heading\n# also not\n```\n\nTail."
	draft := ParseArticle(raw, "")

	if len(draft.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(draft.Sections))
	}
	if !strings.Contains(draft.Sections[0].Body, "## not a heading") {
		t.Errorf("fenced lines should stay in the section body: %q", draft.Sections[0].Body)
	}
}

func TestRenderMarkdown(t *testing.T) {
	draft := types.DraftArticle{
		Title: "Edge Computing",
		Intro: "Why the edge matters.",
		FeaturedImage: types.ImageRef{
			URL:         "https://example.com/edge.jpg",
			AltText:     "edge hardware",
			Attribution: "Jane / Unsplash",
		},
		Sections: []types.Section{
			{Heading: "Latency", Body: "Closer is faster."},
			{Heading: "Costs", Body: "Bandwidth is not free.", Image: types.ImageRef{URL: "https://example.com/c.jpg"}},
		},
	}

	got := RenderMarkdown(draft)

	for _, want := range []string{
		"# Edge Computing\n",
		"![edge hardware](https://example.com/edge.jpg)",
		"*Image: Jane / Unsplash*",
		"## Latency",
		"## Costs",
		"![illustration](https://example.com/c.jpg)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered Markdown missing %q:\n%s", want, got)
		}
	}

	if got != RenderMarkdown(draft) {
		t.Error("rendering the same draft twice produced different text")
	}
	if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("rendered Markdown should end with exactly one newline")
	}
}

// A rendered draft parses back to the same structure.
func TestParseRenderRoundTrip(t *testing.T) {
	draft := types.DraftArticle{
		Title: "Round Trips",
		Intro: "Intro paragraph.",
		Sections: []types.Section{
			{Heading: "First", Body: "First body."},
			{Heading: "Second", Body: "Second body."},
		},
	}

	parsed := ParseArticle(RenderMarkdown(draft), "")
	if parsed.Title != draft.Title {
		t.Errorf("Title = %q, want %q", parsed.Title, draft.Title)
	}
	if parsed.Intro != draft.Intro {
		t.Errorf("Intro = %q, want %q", parsed.Intro, draft.Intro)
	}
	if len(parsed.Sections) != len(draft.Sections) {
		t.Fatalf("got %d sections, want %d", len(parsed.Sections), len(draft.Sections))
	}
	for i := range draft.Sections {
		if parsed.Sections[i].Heading != draft.Sections[i].Heading {
			t.Errorf("section %d heading = %q", i, parsed.Sections[i].Heading)
		}
		if parsed.Sections[i].Body != draft.Sections[i].Body {
			t.Errorf("section %d body = %q", i, parsed.Sections[i].Body)
		}
	}
}
