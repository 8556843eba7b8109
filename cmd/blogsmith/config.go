// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// pipelineConfig assembles the full pipeline configuration from the config
// file, environment, and loaded secrets. Config-file values win over secrets
// so a checked-in config can pin test endpoints.
func pipelineConfig() types.PipelineConfig {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
	if httpCfg.Timeout == 0 {
		httpCfg.Timeout = 15 * time.Second
	}
	if httpCfg.UserAgent == "" {
		httpCfg.UserAgent = "blogsmith/" + version
	}

	provider := types.LLMProvider(viper.GetString("llm.provider"))
	if provider == "" {
		provider = types.ProviderOpenAI
	}
	llmKey := "openai-api-key"
	if provider == types.ProviderAnthropic {
		llmKey = "anthropic-api-key"
	}

	cfg := types.PipelineConfig{
		LLM: types.LLMConfig{
			Provider:  provider,
			Model:     viper.GetString("llm.model"),
			APIKey:    secretDefault(llmKey, viper.GetString("llm.api_key")),
			BaseURL:   viper.GetString("llm.base_url"),
			MaxTokens: viper.GetInt("llm.max_tokens"),
		},
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			APIKey:     secretDefault("serper-api-key", viper.GetString("search.api_key")),
			MaxResults: viper.GetInt("search.max_results"),
		},
		Image: types.ImageConfig{
			HTTPConfig: httpCfg,
			AccessKey:  secretDefault("unsplash-access-key", viper.GetString("image.access_key")),
		},
		Storage: types.StorageConfig{
			PostsDir:    viper.GetString("storage.posts_dir"),
			CatalogPath: viper.GetString("storage.catalog_path"),
		},
		PostProcess: types.PostProcessConfig{
			WordsPerMinute:   viper.GetInt("post_process.words_per_minute"),
			MaxKeywords:      viper.GetInt("post_process.max_keywords"),
			DescriptionLimit: viper.GetInt("post_process.description_limit"),
		},
		DefaultTone:   types.Tone(viper.GetString("defaults.tone")),
		DefaultLength: types.LengthBand(viper.GetString("defaults.length")),
	}

	postsDir, _ := rootCmd.PersistentFlags().GetString("posts-dir")
	if postsDir != "" {
		cfg.Storage.PostsDir = postsDir
	}

	return cfg
}
