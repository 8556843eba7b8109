// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blogsmith/internal/postprocess"
	"github.com/pdiddy/blogsmith/internal/storage"
)

var reprocessCmd = &cobra.Command{
	Use:   "reprocess [slug]",
	Short: "Recompute metadata and HTML for an edited post",
	Long: `Reprocess re-derives metadata (description, keywords, reading time,
sentiment) and re-renders HTML for a saved post after manual edits,
leaving the Markdown text itself untouched. The post keeps its slug and
file identity.

With --file the Markdown is read from a file instead and the derived
metadata is printed without saving anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReprocess,
}

func init() {
	reprocessCmd.Flags().String("file", "", "reprocess a Markdown file and print metadata instead of updating a saved post")
	reprocessCmd.Flags().String("title", "", "override the derived title")
	reprocessCmd.Flags().String("description", "", "override the derived SEO description")
	reprocessCmd.Flags().String("keywords", "", "override the derived keywords (comma-separated)")

	rootCmd.AddCommand(reprocessCmd)
}

func runReprocess(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	overrides := overridesFromFlags(cmd)
	opts := postprocess.Options{Config: cfg.PostProcess, Now: time.Now()}

	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		text, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		artifact, err := postprocess.Reprocess(string(text), overrides, opts)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(artifact.Meta)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("slug or --file required")
	}
	slug := args[0]

	store, err := storage.NewStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	existing, err := store.Load(slug)
	if err != nil {
		return err
	}

	// The slug override preserves file identity across the update.
	overrides.Slug = slug
	artifact, err := postprocess.Reprocess(existing.Markdown, overrides, opts)
	if err != nil {
		return err
	}
	artifact.Meta.RunID = existing.Meta.RunID
	artifact.Meta.CreatedAt = existing.Meta.CreatedAt
	artifact.Meta.Unverified = existing.Meta.Unverified

	if err := store.Update(artifact); err != nil {
		return err
	}

	fmt.Printf("Reprocessed %s (%d min read, sentiment %s)\n",
		slug, artifact.Meta.ReadingTime, artifact.Meta.Sentiment)
	return nil
}

func overridesFromFlags(cmd *cobra.Command) postprocess.MetaOverrides {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	keywords, _ := cmd.Flags().GetString("keywords")

	o := postprocess.MetaOverrides{Title: title, Description: description}
	if keywords != "" {
		for _, k := range strings.Split(keywords, ",") {
			if k = strings.TrimSpace(k); k != "" {
				o.Keywords = append(o.Keywords, k)
			}
		}
	}
	return o
}
