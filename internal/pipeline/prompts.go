// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"strings"

	"github.com/pdiddy/blogsmith/internal/llm"
	"github.com/pdiddy/blogsmith/internal/postprocess"
	"github.com/pdiddy/blogsmith/pkg/types"
)

// researchPrompt asks the researcher to synthesize the gathered sources
// into a report.
func researchPrompt(req types.GenerationRequest, sources []types.SourceEntry) llm.Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\nFocus: %s\n\n", req.Topic, req.Focus)
	b.WriteString("Web sources:\n\n")
	for i, src := range sources {
		fmt.Fprintf(&b, "%d. %s\n", i+1, src.Title)
		fmt.Fprintf(&b, "   URL: %s\n", src.URL)
		if src.Snippet != "" {
			fmt.Fprintf(&b, "   Snippet: %s\n", src.Snippet)
		}
		if !src.Date.IsZero() {
			fmt.Fprintf(&b, "   Published: %s\n", src.Date.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
	b.WriteString("Write the research report based on these sources.")

	return llm.Prompt{
		System:      roleResearcher.Persona,
		User:        b.String(),
		Temperature: req.Creativity,
	}
}

// writerPrompt asks the writer for the first draft from the request and the
// research finding.
func writerPrompt(req types.GenerationRequest, finding types.ResearchFinding) llm.Prompt {
	minWords, maxWords := req.Length.WordRange()

	var b strings.Builder
	fmt.Fprintf(&b, "Write a blog post about %q focusing on %s.\n", req.Topic, req.Focus)
	fmt.Fprintf(&b, "Tone: %s.\n", req.Tone)
	if maxWords > 0 {
		fmt.Fprintf(&b, "Target length: %d-%d words. The band is advisory; prioritize quality over exact length.\n", minWords, maxWords)
	} else {
		fmt.Fprintf(&b, "Target length: at least %d words. The band is advisory; prioritize quality over exact length.\n", minWords)
	}
	if req.SEOOptimized {
		b.WriteString("Use an SEO-friendly title and descriptive section headings.\n")
	}

	if finding.Report != "" {
		b.WriteString("\nResearch report:\n\n")
		b.WriteString(finding.Report)
		b.WriteString("\n")
	}
	if len(finding.Sources) > 0 {
		b.WriteString("\nCite these sources where relevant:\n")
		for _, src := range finding.Sources {
			fmt.Fprintf(&b, "- %s (%s)\n", src.Title, src.URL)
		}
	} else {
		b.WriteString("\nNo research sources are available; write from general knowledge and avoid specific unsourced statistics.\n")
	}

	return llm.Prompt{
		System:      roleWriter.Persona,
		User:        b.String(),
		Temperature: req.Creativity,
	}
}

// editorPrompt asks the editor to revise the draft.
func editorPrompt(req types.GenerationRequest, draft types.DraftArticle) llm.Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Review and edit this blog post about %q. Keep the %s tone.\n\n", req.Topic, req.Tone)
	b.WriteString(postprocess.RenderMarkdown(draft))

	return llm.Prompt{
		System:      roleEditor.Persona,
		User:        b.String(),
		Temperature: req.Creativity,
	}
}

// factCheckPrompt asks the fact checker to review the final draft against
// the research sources.
func factCheckPrompt(draft types.DraftArticle, finding types.ResearchFinding) llm.Prompt {
	var b strings.Builder
	b.WriteString("Post under review:\n\n")
	b.WriteString(postprocess.RenderMarkdown(draft))
	if len(finding.Sources) > 0 {
		b.WriteString("\n\nResearch sources:\n")
		for _, src := range finding.Sources {
			fmt.Fprintf(&b, "- %s (%s): %s\n", src.Title, src.URL, src.Snippet)
		}
	} else {
		b.WriteString("\n\nNo research sources are available; verify against general knowledge only.\n")
	}

	return llm.Prompt{
		System: roleFactChecker.Persona,
		User:   b.String(),
		// Verification wants determinism, not creativity.
		Temperature: 0.1,
	}
}
