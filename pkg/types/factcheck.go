// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Verdict classifies a fact-checked claim.
type Verdict string

const (
	VerdictVerified     Verdict = "verified"
	VerdictQuestionable Verdict = "questionable"
	VerdictUnsupported  Verdict = "unsupported"
)

// FactCheckFinding is one (claim, verdict, note) entry in a report.
type FactCheckFinding struct {
	// Claim is the statement under review, quoted from the draft.
	Claim string `json:"claim" yaml:"claim"`

	// Verdict classifies the claim.
	Verdict Verdict `json:"verdict" yaml:"verdict"`

	// Note explains the verdict or cites a contradicting source.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// FactCheckReport annotates a DraftArticle without mutating it. Findings
// surface as warnings in the artifact's verification notes; they never
// block completion.
type FactCheckReport struct {
	Findings []FactCheckFinding `json:"findings" yaml:"findings"`
}

// HasConcerns reports whether any finding is not verified.
func (r FactCheckReport) HasConcerns() bool {
	for _, f := range r.Findings {
		if f.Verdict != VerdictVerified {
			return true
		}
	}
	return false
}
