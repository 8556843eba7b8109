// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blogsmith/internal/storage"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Manage saved posts (list, show, delete, reindex)",
	Long: `Posts manages the saved post files and their SQLite catalog. The files
are the source of truth; the catalog is a derived index that reindex can
rebuild at any time.`,
}

// --- list subcommand ---

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved posts, newest first",
	RunE:  runPostsList,
}

func runPostsList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	metas, err := store.List()
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(metas)
	}

	if len(metas) == 0 {
		fmt.Println("No posts found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-40s  %-10s  %-8s  %s\n",
		"Slug", "Title", "Created", "Read", "Sentiment")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, m := range metas {
		title := m.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		slug := m.Slug
		if len(slug) > 30 {
			slug = slug[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-30s  %-40s  %-10s  %-8s  %s\n",
			slug, title, m.CreatedAt.Format("2006-01-02"),
			fmt.Sprintf("%d min", m.ReadingTime), m.Sentiment)
	}

	fmt.Fprintf(os.Stdout, "\n%d posts\n", len(metas))
	return nil
}

// --- show subcommand ---

var postsShowCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Print a saved post's Markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostsShow,
}

func runPostsShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	artifact, err := store.Load(args[0])
	if err != nil {
		return err
	}

	metaOnly, _ := cmd.Flags().GetBool("meta")
	if metaOnly {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(artifact.Meta)
	}

	fmt.Println(artifact.Markdown)
	return nil
}

// --- delete subcommand ---

var postsDeleteCmd = &cobra.Command{
	Use:   "delete [slug]",
	Short: "Delete a saved post and its catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

// --- reindex subcommand ---

var postsReindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the catalog from the post files",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Reindex()
		if err != nil {
			return err
		}
		fmt.Printf("Reindexed %d post(s)\n", n)
		return nil
	},
}

func openStore() (*storage.Store, error) {
	cfg := pipelineConfig()
	return storage.NewStore(cfg.Storage)
}

func init() {
	postsListCmd.Flags().Bool("json", false, "output posts as JSON")
	postsShowCmd.Flags().Bool("meta", false, "print metadata as JSON instead of the Markdown body")

	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsShowCmd)
	postsCmd.AddCommand(postsDeleteCmd)
	postsCmd.AddCommand(postsReindexCmd)
	rootCmd.AddCommand(postsCmd)
}
