// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the blogsmith CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blogsmith/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the blogsmith CLI.
var rootCmd = &cobra.Command{
	Use:   "blogsmith",
	Short: "AI-assisted blog post generation and publishing",
	Long: `blogsmith coordinates a team of role-specialized AI agents (researcher,
writer, editor, illustrator, fact-checker) to produce complete blog posts,
then post-processes them into publishable Markdown and HTML with SEO
metadata, reading time, sentiment, and keyword tags.

Each operation is a subcommand: generate produces a new post, reprocess
recomputes metadata for edited text, posts manages saved posts, and serve
exposes the same operations over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", secrets.Keys(s))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./blogsmith.yaml or ~/.config/blogsmith/config.yaml)")
	rootCmd.PersistentFlags().String("posts-dir", "", "directory for saved posts (default: posts)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blogsmith")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "blogsmith"))
		}
	}

	viper.SetEnvPrefix("BLOGSMITH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
