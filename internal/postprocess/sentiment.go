// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package postprocess

import (
	"github.com/pdiddy/blogsmith/pkg/types"
)

// Lexicons for rule-based sentiment scoring. Advisory metadata only; the
// label never blocks publication.
var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "best": true,
	"better": true, "improve": true, "improved": true, "improvement": true,
	"powerful": true, "efficient": true, "effective": true, "robust": true,
	"reliable": true, "fast": true, "faster": true, "simple": true,
	"easy": true, "easier": true, "success": true, "successful": true,
	"benefit": true, "benefits": true, "advantage": true, "advantages": true,
	"innovative": true, "innovation": true, "promising": true, "exciting": true,
	"breakthrough": true, "gain": true, "gains": true, "win": true,
	"elegant": true, "clean": true, "flexible": true, "scalable": true,
	"secure": true, "useful": true, "valuable": true, "popular": true,
	"love": true, "amazing": true, "impressive": true, "remarkable": true,
}

var negativeWords = map[string]bool{
	"bad": true, "worse": true, "worst": true, "poor": true,
	"fail": true, "fails": true, "failed": true, "failure": true,
	"problem": true, "problems": true, "issue": true, "issues": true,
	"risk": true, "risks": true, "risky": true, "danger": true,
	"dangerous": true, "threat": true, "threats": true, "vulnerable": true,
	"vulnerability": true, "slow": true, "slower": true, "difficult": true,
	"hard": true, "harder": true, "complex": true, "complicated": true,
	"expensive": true, "costly": true, "broken": true, "bug": true,
	"bugs": true, "error": true, "errors": true, "crash": true,
	"loss": true, "lose": true, "losing": true, "concern": true,
	"concerns": true, "drawback": true, "drawbacks": true, "limitation": true,
	"limitations": true, "weak": true, "weakness": true, "flaw": true,
}

// sentimentThreshold is the normalized-score band treated as neutral.
const sentimentThreshold = 0.05

// ScoreSentiment runs the lexicon pass over text and returns exactly one
// label. Text with no lexicon hits is neutral.
func ScoreSentiment(text string) types.SentimentLabel {
	positive, negative := 0, 0
	for _, tok := range tokenize(text) {
		switch {
		case positiveWords[tok]:
			positive++
		case negativeWords[tok]:
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return types.SentimentNeutral
	}

	score := float64(positive-negative) / float64(total)
	switch {
	case score > sentimentThreshold:
		return types.SentimentPositive
	case score < -sentimentThreshold:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}
