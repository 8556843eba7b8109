// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
//
// Collaborator calls deliberately issue a single round trip each: the
// pipeline's error model absorbs collaborator failures per stage instead of
// retrying, so there is no retry loop here.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/blogsmith/pkg/types"
)

const defaultTimeout = 15 * time.Second

// NewClient builds an http.Client from shared HTTP settings.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// GetJSON issues a GET request with the configured User-Agent and decodes a
// JSON response body into out. Non-2xx statuses are errors.
func GetJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, cfg types.HTTPConfig, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return doJSON(client, req, headers, cfg, out)
}

// PostJSON issues a POST request with a JSON body and decodes a JSON
// response body into out. Non-2xx statuses are errors.
func PostJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, cfg types.HTTPConfig, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return doJSON(client, req, headers, cfg, out)
}

func doJSON(client *http.Client, req *http.Request, headers map[string]string, cfg types.HTTPConfig, out any) error {
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, req.URL.Host)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
