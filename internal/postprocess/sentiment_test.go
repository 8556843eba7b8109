// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package postprocess

import (
	"testing"

	"github.com/pdiddy/blogsmith/pkg/types"
)

func TestScoreSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.SentimentLabel
	}{
		{
			name: "clearly positive",
			text: "This is a great improvement with excellent, reliable results.",
			want: types.SentimentPositive,
		},
		{
			name: "clearly negative",
			text: "The rollout was a failure: broken builds, errors, and crash loops.",
			want: types.SentimentNegative,
		},
		{
			name: "no lexicon hits",
			text: "The meeting is scheduled for Tuesday at noon.",
			want: types.SentimentNeutral,
		},
		{
			name: "balanced hits",
			text: "The good parts offset the bad parts.",
			want: types.SentimentNeutral,
		},
		{
			name: "empty text",
			text: "",
			want: types.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreSentiment(tt.text); got != tt.want {
				t.Errorf("ScoreSentiment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Every input maps to exactly one of the three labels.
func TestScoreSentimentAlwaysLabeled(t *testing.T) {
	inputs := []string{
		"", "good", "bad", "good bad risk benefit", "!!!",
		"a mixed bag of promising gains and costly drawbacks",
	}
	valid := map[types.SentimentLabel]bool{
		types.SentimentPositive: true,
		types.SentimentNeutral:  true,
		types.SentimentNegative: true,
	}
	for _, in := range inputs {
		if got := ScoreSentiment(in); !valid[got] {
			t.Errorf("ScoreSentiment(%q) = %q, not a valid label", in, got)
		}
	}
}
