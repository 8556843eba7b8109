// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blogsmith/internal/llm"
	"github.com/pdiddy/blogsmith/pkg/types"
)

const writerResponse = `# Vector Databases in Production

Vector stores moved from research toys to production dependencies.

## Indexing Strategies

HNSW graphs trade memory for recall.

## Operational Costs

Rebuilds are the hidden expense.`

const editorResponse = `# Vector Databases in Production

Vector stores have moved from research toys to production dependencies.

## Indexing Strategies

HNSW graphs trade memory for recall; tune ef_construction first.

## Operational Costs

Index rebuilds are the hidden expense.`

const factCheckResponse = `{"findings": [
  {"claim": "HNSW graphs trade memory for recall", "verdict": "verified", "note": "matches source 1"},
  {"claim": "Rebuilds are the hidden expense", "verdict": "questionable", "note": "no source covers costs"}
]}`

// scriptedClient returns canned responses in call order and records each
// prompt it saw.
type scriptedClient struct {
	responses []string
	errs      []error
	prompts   []llm.Prompt
}

func (c *scriptedClient) Complete(ctx context.Context, p llm.Prompt) (string, error) {
	i := len(c.prompts)
	c.prompts = append(c.prompts, p)
	if i < len(c.errs) && c.errs[i] != nil {
		return "", c.errs[i]
	}
	if i < len(c.responses) {
		return c.responses[i], nil
	}
	return "", fmt.Errorf("unexpected completion call %d", i)
}

type stubSearcher struct {
	sources []types.SourceEntry
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string, dates types.DateRange) ([]types.SourceEntry, error) {
	return s.sources, s.err
}

type stubFinder struct {
	err error
}

func (f *stubFinder) Find(ctx context.Context, query string) (types.ImageRef, error) {
	if f.err != nil {
		return types.ImageRef{}, f.err
	}
	return types.ImageRef{URL: "https://img.example/" + strings.ReplaceAll(query, " ", "-"), AltText: query}, nil
}

func testSources() []types.SourceEntry {
	return []types.SourceEntry{
		{Title: "HNSW explained", URL: "https://example.com/hnsw", Snippet: "graph index"},
		{Title: "Vector DB costs", URL: "https://example.com/costs"},
	}
}

func testRequest() types.GenerationRequest {
	return types.GenerationRequest{Topic: "vector databases"}
}

func TestGenerate(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Research report: HNSW is the dominant index structure.",
		writerResponse,
		editorResponse,
		factCheckResponse,
	}}
	orch := New(client, &stubSearcher{sources: testSources()}, &stubFinder{}, types.PipelineConfig{}, nil)

	artifact, err := orch.Generate(context.Background(), testRequest())
	require.NoError(t, err)

	// researcher synthesis, writer, editor, fact checker.
	require.Len(t, client.prompts, 4)
	assert.Contains(t, client.prompts[0].User, "https://example.com/hnsw")
	assert.Contains(t, client.prompts[1].User, "vector databases")
	assert.InDelta(t, 0.1, client.prompts[3].Temperature, 1e-9)

	assert.NotEmpty(t, artifact.Meta.RunID)
	assert.False(t, artifact.Meta.Unverified)
	assert.Equal(t, "Vector Databases in Production", artifact.Meta.Title)
	assert.Equal(t, "vector-databases-in-production", artifact.Meta.Slug)

	// The editor's revision, not the writer's draft, is what gets published.
	assert.Contains(t, artifact.Markdown, "tune ef_construction first")
	assert.Contains(t, artifact.Markdown, "## Verification Notes")
	assert.Contains(t, artifact.Markdown, "- **verified**: HNSW graphs trade memory for recall")

	require.Len(t, artifact.FactCheck.Findings, 2)
	assert.Equal(t, types.VerdictQuestionable, artifact.FactCheck.Findings[1].Verdict)

	// Real images, not placeholders.
	require.NotEmpty(t, artifact.Meta.Images)
	for _, img := range artifact.Meta.Images {
		assert.False(t, img.Placeholder)
	}
}

func TestGenerateResearchDegrades(t *testing.T) {
	client := &scriptedClient{responses: []string{
		writerResponse,
		editorResponse,
		factCheckResponse,
	}}
	orch := New(client, &stubSearcher{err: errors.New("search quota exceeded")}, &stubFinder{}, types.PipelineConfig{}, nil)

	artifact, err := orch.Generate(context.Background(), testRequest())
	require.NoError(t, err)

	// No research synthesis call happens without sources.
	assert.Len(t, client.prompts, 3)
	assert.True(t, artifact.Meta.Unverified)

	found := false
	for _, w := range artifact.Meta.Warnings {
		if strings.Contains(w, "unverified") {
			found = true
		}
	}
	assert.True(t, found, "expected an unverified warning, got %v", artifact.Meta.Warnings)
}

func TestGenerateNoSearcher(t *testing.T) {
	client := &scriptedClient{responses: []string{writerResponse, editorResponse, factCheckResponse}}
	orch := New(client, nil, &stubFinder{}, types.PipelineConfig{}, nil)

	artifact, err := orch.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.True(t, artifact.Meta.Unverified)
}

func TestGenerateWriterFailureIsFatal(t *testing.T) {
	client := &scriptedClient{
		responses: []string{"report"},
		errs:      []error{nil, errors.New("model overloaded")},
	}
	orch := New(client, &stubSearcher{sources: testSources()}, &stubFinder{}, types.PipelineConfig{}, nil)

	_, err := orch.Generate(context.Background(), testRequest())
	require.Error(t, err)

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, "writer", stageErr.Stage)
}

func TestGenerateEditorEmptyRevisionIsFatal(t *testing.T) {
	client := &scriptedClient{responses: []string{"report", writerResponse, ""}}
	orch := New(client, &stubSearcher{sources: testSources()}, &stubFinder{}, types.PipelineConfig{}, nil)

	_, err := orch.Generate(context.Background(), testRequest())
	require.Error(t, err)

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, "editor", stageErr.Stage)
}

func TestGeneratePlaceholderImagery(t *testing.T) {
	client := &scriptedClient{responses: []string{"report", writerResponse, editorResponse, factCheckResponse}}
	orch := New(client, &stubSearcher{sources: testSources()}, &stubFinder{err: errors.New("rate limited")}, types.PipelineConfig{}, nil)

	artifact, err := orch.Generate(context.Background(), testRequest())
	require.NoError(t, err)

	require.NotEmpty(t, artifact.Meta.Images)
	for _, img := range artifact.Meta.Images {
		assert.True(t, img.Placeholder)
	}

	found := false
	for _, w := range artifact.Meta.Warnings {
		if strings.Contains(w, "placeholder imagery") {
			found = true
		}
	}
	assert.True(t, found, "expected a placeholder warning, got %v", artifact.Meta.Warnings)
}

func TestGenerateFactCheckDegrades(t *testing.T) {
	client := &scriptedClient{responses: []string{"report", writerResponse, editorResponse, "sorry, I cannot do that"}}
	orch := New(client, &stubSearcher{sources: testSources()}, &stubFinder{}, types.PipelineConfig{}, nil)

	artifact, err := orch.Generate(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Empty(t, artifact.FactCheck.Findings)
	assert.NotContains(t, artifact.Markdown, "## Verification Notes")

	found := false
	for _, w := range artifact.Meta.Warnings {
		if strings.Contains(w, "verification notes omitted") {
			found = true
		}
	}
	assert.True(t, found, "expected a fact-check warning, got %v", artifact.Meta.Warnings)
}

func TestGenerateInvalidRequest(t *testing.T) {
	orch := New(&scriptedClient{}, nil, nil, types.PipelineConfig{}, nil)

	_, err := orch.Generate(context.Background(), types.GenerationRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic is required")

	_, err = orch.Generate(context.Background(), types.GenerationRequest{Topic: "x", Creativity: 5})
	require.Error(t, err)
}

func TestParseFactCheckResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"plain json", factCheckResponse, 2, false},
		{"fenced json", "```json\n" + factCheckResponse + "\n```", 2, false},
		{"surrounding prose", "Here are my findings:\n" + factCheckResponse + "\nLet me know.", 2, false},
		{"empty findings", `{"findings": []}`, 0, false},
		{"not json", "I could not verify anything.", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := parseFactCheckResponse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, report.Findings, tt.want)
		})
	}
}

func TestParseFactCheckResponseVerdicts(t *testing.T) {
	raw := `{"findings": [
	  {"claim": "a", "verdict": "VERIFIED"},
	  {"claim": "b", "verdict": "plausible"},
	  {"claim": "", "verdict": "verified"}
	]}`

	report, err := parseFactCheckResponse(raw)
	require.NoError(t, err)
	require.Len(t, report.Findings, 2)

	// Case-folded known verdicts pass through; unknown ones demote.
	assert.Equal(t, types.VerdictVerified, report.Findings[0].Verdict)
	assert.Equal(t, types.VerdictQuestionable, report.Findings[1].Verdict)
}
