// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blogsmith/internal/server"
	"github.com/pdiddy/blogsmith/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generation and post APIs over HTTP",
	Long: `Serve exposes the pipeline over HTTP: POST /api/posts generates a post,
GET /api/posts lists saved posts, GET/PUT/DELETE /api/posts/:slug read,
edit, and remove one, and POST /api/reprocess previews metadata for
edited Markdown without saving.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	addr, _ := cmd.Flags().GetString("addr")
	srv := server.New(orch, store, cfg.PostProcess)

	fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)
	return srv.Router().Run(addr)
}
