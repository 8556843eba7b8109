// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the completion provider behind a single-call Client
// so pipeline stages and tests can swap backends.
package llm

import (
	"context"
	"fmt"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// Prompt is one role invocation: the role persona plus the accumulated
// pipeline context, with a sampling temperature.
type Prompt struct {
	// System is the role persona (goal, backstory, output rules).
	System string

	// User is the task description plus prior stage output.
	User string

	// Temperature is the sampling temperature, from the request's
	// creativity level.
	Temperature float64
}

// Client issues one completion request per call. Implementations must not
// retry beyond whatever their SDK does internally.
type Client interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// New builds a Client from provider configuration.
func New(cfg types.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case types.ProviderOpenAI, "":
		return newOpenAI(cfg)
	case types.ProviderAnthropic:
		return newAnthropic(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
