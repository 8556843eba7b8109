// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package postprocess

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		title    string
		max      int
		want     []string
	}{
		{
			name:     "title tokens dominate",
			markdown: "kubernetes kubernetes storage cluster nodes",
			title:    "Kubernetes Storage",
			max:      3,
			// kubernetes 2+2, storage 1+2, cluster 1, nodes 1.
			want: []string{"kubernetes", "storage", "cluster"},
		},
		{
			name:     "stopwords excluded",
			markdown: "the database and the cache are for the database",
			title:    "Database Caching",
			max:      8,
			// database 2+2, caching 0+2, cache 1.
			want: []string{"database", "caching", "cache"},
		},
		{
			name:     "short tokens dropped",
			markdown: "go is ok but the api and sdk are fine",
			title:    "Go",
			max:      8,
			want:     []string{"api", "fine", "sdk"},
		},
		{
			name:     "ties break alphabetically",
			markdown: "zebra apple",
			title:    "",
			max:      8,
			want:     []string{"apple", "zebra"},
		},
		{
			name:     "max caps the set",
			markdown: "alpha beta gamma delta",
			title:    "",
			max:      2,
			want:     []string{"alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.markdown, tt.title, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Markdown, *emphasis* and `code`! 123 ab")
	want := []string{"markdown", "emphasis", "code", "123"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeMinimumLengthInRunes(t *testing.T) {
	// Single CJK runes are three bytes but one rune; the length rule must
	// not admit them.
	got := tokenize("数 库 数据库 caché ab")
	want := []string{"数据库", "caché"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize() = %v, want %v", got, want)
	}
}
