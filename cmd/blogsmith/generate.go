// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blogsmith/internal/imagery"
	"github.com/pdiddy/blogsmith/internal/llm"
	"github.com/pdiddy/blogsmith/internal/pipeline"
	"github.com/pdiddy/blogsmith/internal/research"
	"github.com/pdiddy/blogsmith/internal/storage"
	"github.com/pdiddy/blogsmith/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate a blog post from a topic",
	Long: `Generate runs the full agent pipeline for a topic: research the subject,
write and edit the draft, attach imagery, fact-check the claims, then
post-process into Markdown and HTML and save both under the posts
directory. When research or imagery collaborators are unavailable the run
completes with reduced information and records a warning; writer or editor
failures abort the run and nothing is saved.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("focus", "", "narrow the topic (e.g. \"practical applications\")")
	generateCmd.Flags().String("tone", "", "writing voice: professional, conversational, technical, informative, friendly")
	generateCmd.Flags().String("length", "", "advisory length band: short, medium, long")
	generateCmd.Flags().Float64("creativity", 0, "sampling temperature, 0.1-1.0 (default 0.7)")
	generateCmd.Flags().String("from", "", "restrict research to sources published after YYYY-MM-DD")
	generateCmd.Flags().String("to", "", "restrict research to sources published before YYYY-MM-DD")
	generateCmd.Flags().String("recent", "", "restrict research to the last week, month, or year")
	generateCmd.Flags().Bool("toc", false, "insert a table of contents after the title")
	generateCmd.Flags().Bool("seo", false, "ask the writer for an SEO-friendly title and headings")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd, args[0])
	if err != nil {
		return err
	}

	cfg := pipelineConfig()
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	artifact, err := orch.Generate(context.Background(), req)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(artifact); err != nil {
		return err
	}

	fmt.Printf("Saved %q as %s (%d min read, sentiment %s)\n",
		artifact.Meta.Title, artifact.Meta.Slug, artifact.Meta.ReadingTime, artifact.Meta.Sentiment)
	for _, w := range artifact.Meta.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return nil
}

// requestFromFlags builds the generation request, applying configured
// defaults for tone and length before Validate fills the built-in ones.
func requestFromFlags(cmd *cobra.Command, topic string) (types.GenerationRequest, error) {
	cfg := pipelineConfig()

	focus, _ := cmd.Flags().GetString("focus")
	tone, _ := cmd.Flags().GetString("tone")
	length, _ := cmd.Flags().GetString("length")
	creativity, _ := cmd.Flags().GetFloat64("creativity")
	addTOC, _ := cmd.Flags().GetBool("toc")
	seo, _ := cmd.Flags().GetBool("seo")

	req := types.GenerationRequest{
		Topic:        topic,
		Focus:        focus,
		Tone:         types.Tone(tone),
		Length:       types.LengthBand(length),
		Creativity:   creativity,
		AddTOC:       addTOC,
		SEOOptimized: seo,
	}
	if req.Tone == "" {
		req.Tone = cfg.DefaultTone
	}
	if req.Length == "" {
		req.Length = cfg.DefaultLength
	}

	if recent, _ := cmd.Flags().GetString("recent"); recent != "" {
		r, err := types.RecentRange(recent, time.Now())
		if err != nil {
			return req, err
		}
		req.DateRange = r
	}

	// Explicit bounds override a recency window.
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return req, fmt.Errorf("invalid --from date %q: %w", from, err)
		}
		req.DateRange.From = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return req, fmt.Errorf("invalid --to date %q: %w", to, err)
		}
		req.DateRange.To = t
	}

	return req, nil
}

// buildOrchestrator wires the pipeline collaborators. Search and imagery
// are optional: without keys those stages degrade per run.
func buildOrchestrator(cfg types.PipelineConfig) (*pipeline.Orchestrator, error) {
	client, err := llm.New(cfg.LLM)
	if err != nil {
		return nil, err
	}

	var searcher research.Searcher
	if cfg.Search.APIKey != "" {
		searcher = research.NewSerperSearcher(cfg.Search)
	}

	var finder imagery.Finder
	if cfg.Image.AccessKey != "" {
		finder = imagery.NewUnsplashFinder(cfg.Image)
	}

	return pipeline.New(client, searcher, finder, cfg, os.Stdout), nil
}
