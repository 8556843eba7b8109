// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "blogsmith/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LLMProvider identifies the completion provider backend.
type LLMProvider string

const (
	ProviderOpenAI    LLMProvider = "openai"
	ProviderAnthropic LLMProvider = "anthropic"
)

// LLMConfig holds settings for the completion provider shared by every
// pipeline role.
type LLMConfig struct {
	// Provider selects the backend: openai or anthropic.
	Provider LLMProvider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint. Used by tests and proxies.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxTokens caps the response length per completion (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// SearchConfig holds settings for the web search collaborator used by the
// researcher stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the search API. When empty the
	// researcher stage degrades to an empty finding.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults is the number of sources to request (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ImageConfig holds settings for the image search collaborator used by the
// illustrator stage.
type ImageConfig struct {
	HTTPConfig `yaml:",inline"`

	// AccessKey authenticates against the image API. When empty the
	// illustrator falls back to placeholder images.
	AccessKey string `json:"access_key,omitempty" yaml:"access_key,omitempty"`
}

// StorageConfig holds settings for artifact persistence.
type StorageConfig struct {
	// PostsDir is the directory holding saved posts (.md and .html pairs).
	PostsDir string `json:"posts_dir" yaml:"posts_dir"`

	// CatalogPath is the SQLite catalog location. Defaults to
	// PostsDir/catalog.db. The catalog is a derived index; the files
	// remain the source of truth.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`
}

// PostProcessConfig holds settings for the post-processing stage.
type PostProcessConfig struct {
	// WordsPerMinute is the reading-speed constant (default 200).
	WordsPerMinute int `json:"words_per_minute" yaml:"words_per_minute"`

	// MaxKeywords bounds the extracted keyword set (default 8).
	MaxKeywords int `json:"max_keywords" yaml:"max_keywords"`

	// DescriptionLimit bounds the SEO description length in bytes
	// (default 160).
	DescriptionLimit int `json:"description_limit" yaml:"description_limit"`
}

// PipelineConfig groups all stage configurations for one orchestrator.
type PipelineConfig struct {
	LLM           LLMConfig         `json:"llm" yaml:"llm"`
	Search        SearchConfig      `json:"search" yaml:"search"`
	Image         ImageConfig       `json:"image" yaml:"image"`
	Storage       StorageConfig     `json:"storage" yaml:"storage"`
	PostProcess   PostProcessConfig `json:"post_process" yaml:"post_process"`
	DefaultTone   Tone              `json:"default_tone" yaml:"default_tone"`
	DefaultLength LengthBand        `json:"default_length" yaml:"default_length"`
}
