// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package postprocess

import (
	"sort"
	"strings"
	"unicode"
)

// stopwords are excluded from keyword extraction.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "your": true,
	"this": true, "that": true, "with": true, "from": true, "have": true,
	"has": true, "was": true, "were": true, "will": true, "more": true,
	"when": true, "what": true, "which": true, "their": true, "they": true,
	"them": true, "then": true, "than": true, "its": true, "into": true,
	"also": true, "been": true, "being": true, "each": true, "how": true,
	"like": true, "may": true, "such": true, "these": true, "those": true,
	"other": true, "some": true, "about": true, "while": true,
	"where": true, "here": true, "there": true, "over": true, "most": true,
}

// ExtractKeywords returns up to max keywords by token frequency. Title
// tokens count double so the subject dominates. Purely lexical; no
// semantics.
func ExtractKeywords(markdown, title string, max int) []string {
	counts := make(map[string]int)

	for _, tok := range tokenize(markdown) {
		counts[tok]++
	}
	for _, tok := range tokenize(title) {
		counts[tok] += 2
	}

	keywords := make([]string, 0, len(counts))
	for k := range counts {
		keywords = append(keywords, k)
	}
	// Frequency descending, then alphabetical for a stable order.
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > max {
		keywords = keywords[:max]
	}
	return keywords
}

// tokenize lowercases text and yields alphanumeric tokens of at least three
// runes, minus stopwords. Markdown punctuation breaks tokens naturally.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	runes := 0

	flush := func() {
		if runes >= 3 {
			tok := b.String()
			if !stopwords[tok] {
				tokens = append(tokens, tok)
			}
		}
		b.Reset()
		runes = 0
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			runes++
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
