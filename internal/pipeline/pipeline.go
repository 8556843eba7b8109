// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the fixed five-stage role sequence that turns one
// GenerationRequest into one PublishedArtifact.
//
// Stages run strictly in order on the calling goroutine: researcher,
// writer, editor, illustrator, fact-checker. Each stage's output is part of
// the next stage's input; no stage is skipped or reordered. Failures at the
// researcher, illustrator, and fact-checker stages degrade (the run
// completes with reduced information and a warning); failures at the writer
// and editor stages are fatal and surface as a StageError.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/blogsmith/internal/imagery"
	"github.com/pdiddy/blogsmith/internal/llm"
	"github.com/pdiddy/blogsmith/internal/postprocess"
	"github.com/pdiddy/blogsmith/internal/research"
	"github.com/pdiddy/blogsmith/pkg/types"
)

// StageError is a fatal pipeline failure carrying the failing stage name.
// Only the writer and editor stages produce it; no artifact is persisted
// after one.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("generation failed at %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Orchestrator sequences the five roles over shared collaborators. Each
// Generate call is independent; the orchestrator holds no per-run state and
// is safe to share across concurrent submissions.
type Orchestrator struct {
	llm      llm.Client
	searcher research.Searcher
	images   imagery.Finder
	cfg      types.PipelineConfig
	out      io.Writer
}

// New builds an Orchestrator. searcher and images may be nil; the matching
// stages then degrade on every run. out receives progress and warning
// lines.
func New(client llm.Client, searcher research.Searcher, images imagery.Finder, cfg types.PipelineConfig, out io.Writer) *Orchestrator {
	if out == nil {
		out = io.Discard
	}
	return &Orchestrator{
		llm:      client,
		searcher: searcher,
		images:   images,
		cfg:      cfg,
		out:      out,
	}
}

// Generate runs the full pipeline for one request and returns the finished
// artifact. The artifact is not persisted; callers save it through the
// storage layer so that nothing is written when generation fails.
func (o *Orchestrator) Generate(ctx context.Context, req types.GenerationRequest) (*types.PublishedArtifact, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	runID := uuid.NewString()
	createdAt := time.Now()
	var warnings []string
	unverified := false

	// Stage 1: researcher. Degrades to an empty finding.
	finding, researchWarnings := o.runResearcher(ctx, req)
	warnings = append(warnings, researchWarnings...)
	if finding.IsEmpty() {
		unverified = true
	}
	fmt.Fprintf(o.out, "researcher: %d sources\n", len(finding.Sources))

	// Stage 2: writer. Fatal on failure.
	draft, err := o.runWriter(ctx, req, finding)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(o.out, "writer: %q (%d sections, %d words)\n", draft.Title, len(draft.Sections), draft.WordCount())

	// Stage 3: editor. Fatal on failure.
	draft, err = o.runEditor(ctx, req, draft)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(o.out, "editor: %d sections, %d words\n", len(draft.Sections), draft.WordCount())

	// Stage 4: illustrator. Degrades to placeholder imagery.
	draft, illustrationWarnings := o.runIllustrator(ctx, req, draft)
	warnings = append(warnings, illustrationWarnings...)

	// Stage 5: fact checker. Degrades to an empty report.
	report, factCheckWarnings := o.runFactChecker(ctx, draft, finding)
	warnings = append(warnings, factCheckWarnings...)
	fmt.Fprintf(o.out, "fact-checker: %d findings\n", len(report.Findings))

	artifact, err := postprocess.Process(draft, report, postprocess.Options{
		Config: o.cfg.PostProcess,
		AddTOC: req.AddTOC,
		Now:    createdAt,
	})
	if err != nil {
		return nil, err
	}

	artifact.Meta.RunID = runID
	artifact.Meta.Unverified = unverified
	artifact.Meta.Warnings = append(warnings, artifact.Meta.Warnings...)
	return artifact, nil
}

// runResearcher gathers web sources and synthesizes the research report.
// Any failure degrades: the run proceeds with whatever was gathered.
func (o *Orchestrator) runResearcher(ctx context.Context, req types.GenerationRequest) (types.ResearchFinding, []string) {
	var finding types.ResearchFinding

	if o.searcher == nil {
		return finding, []string{"research unavailable: no search collaborator configured; post is unverified"}
	}

	sources, err := research.Gather(ctx, o.searcher, req)
	if err != nil {
		fmt.Fprintf(o.out, "warning: %v\n", err)
		return finding, []string{fmt.Sprintf("%v; post is unverified", err)}
	}
	finding.Sources = sources

	report, err := o.llm.Complete(ctx, researchPrompt(req, sources))
	if err != nil {
		fmt.Fprintf(o.out, "warning: researcher synthesis failed: %v\n", err)
		return finding, []string{fmt.Sprintf("researcher synthesis failed: %v", err)}
	}
	finding.Report = strings.TrimSpace(report)
	return finding, nil
}

// runWriter produces the first draft. Provider failures and empty responses
// are fatal.
func (o *Orchestrator) runWriter(ctx context.Context, req types.GenerationRequest, finding types.ResearchFinding) (types.DraftArticle, error) {
	raw, err := o.llm.Complete(ctx, writerPrompt(req, finding))
	if err != nil {
		return types.DraftArticle{}, &StageError{Stage: roleWriter.Name, Err: err}
	}

	draft := postprocess.ParseArticle(raw, req.Topic)
	if draft.Intro == "" && len(draft.Sections) == 0 {
		return types.DraftArticle{}, &StageError{Stage: roleWriter.Name, Err: fmt.Errorf("model returned an empty draft")}
	}
	return draft, nil
}

// runEditor revises the draft. Provider failures and empty responses are
// fatal; a revision that drops the topic entirely is treated as malformed.
func (o *Orchestrator) runEditor(ctx context.Context, req types.GenerationRequest, draft types.DraftArticle) (types.DraftArticle, error) {
	raw, err := o.llm.Complete(ctx, editorPrompt(req, draft))
	if err != nil {
		return types.DraftArticle{}, &StageError{Stage: roleEditor.Name, Err: err}
	}

	revised := postprocess.ParseArticle(raw, draft.Title)
	if revised.Intro == "" && len(revised.Sections) == 0 {
		return types.DraftArticle{}, &StageError{Stage: roleEditor.Name, Err: fmt.Errorf("model returned an empty revision")}
	}
	return revised, nil
}

// runIllustrator finds one image per section plus a featured image. Every
// failure degrades to a placeholder reference.
func (o *Orchestrator) runIllustrator(ctx context.Context, req types.GenerationRequest, draft types.DraftArticle) (types.DraftArticle, []string) {
	var warnings []string
	placeholders := 0

	featured, err := imagery.FindOrPlaceholder(ctx, o.images, req.Topic)
	if err != nil {
		placeholders++
	}
	draft.FeaturedImage = featured

	for i := range draft.Sections {
		query := req.Topic + " " + draft.Sections[i].Heading
		img, err := imagery.FindOrPlaceholder(ctx, o.images, query)
		if err != nil {
			placeholders++
		}
		draft.Sections[i].Image = img
	}

	if placeholders > 0 {
		fmt.Fprintf(o.out, "warning: illustrator used %d placeholder image(s)\n", placeholders)
		warnings = append(warnings, fmt.Sprintf("image service unavailable for %d image(s); placeholder imagery used", placeholders))
	}
	return draft, warnings
}

// runFactChecker reviews the final draft. Failures degrade: the report is
// omitted and a warning recorded.
func (o *Orchestrator) runFactChecker(ctx context.Context, draft types.DraftArticle, finding types.ResearchFinding) (types.FactCheckReport, []string) {
	raw, err := o.llm.Complete(ctx, factCheckPrompt(draft, finding))
	if err != nil {
		fmt.Fprintf(o.out, "warning: fact check failed: %v\n", err)
		return types.FactCheckReport{}, []string{fmt.Sprintf("fact check unavailable: %v; verification notes omitted", err)}
	}

	report, err := parseFactCheckResponse(raw)
	if err != nil {
		fmt.Fprintf(o.out, "warning: fact check response unusable: %v\n", err)
		return types.FactCheckReport{}, []string{fmt.Sprintf("fact check unavailable: %v; verification notes omitted", err)}
	}
	return report, nil
}

// parseFactCheckResponse decodes the fact checker's JSON. Unknown verdicts
// are demoted to questionable rather than dropped.
func parseFactCheckResponse(raw string) (types.FactCheckReport, error) {
	content := cleanJSONResponse(raw)

	var parsed struct {
		Findings []struct {
			Claim   string `json:"claim"`
			Verdict string `json:"verdict"`
			Note    string `json:"note"`
		} `json:"findings"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return types.FactCheckReport{}, fmt.Errorf("parsing fact check response: %w", err)
	}

	var report types.FactCheckReport
	for _, f := range parsed.Findings {
		if f.Claim == "" {
			continue
		}
		verdict := types.Verdict(strings.ToLower(f.Verdict))
		switch verdict {
		case types.VerdictVerified, types.VerdictQuestionable, types.VerdictUnsupported:
		default:
			verdict = types.VerdictQuestionable
		}
		report.Findings = append(report.Findings, types.FactCheckFinding{
			Claim:   f.Claim,
			Verdict: verdict,
			Note:    f.Note,
		})
	}
	return report, nil
}

// cleanJSONResponse strips code fences and surrounding prose from a model
// response expected to be a JSON object.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
