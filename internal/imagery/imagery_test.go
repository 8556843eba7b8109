// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/blogsmith/pkg/types"
)

func TestPlaceholder(t *testing.T) {
	first := Placeholder("cloud computing")
	second := Placeholder("cloud computing")

	if first != second {
		t.Error("the same query should pick the same placeholder")
	}
	if !first.Placeholder {
		t.Error("Placeholder flag not set")
	}
	if !strings.HasPrefix(first.URL, "https://images.unsplash.com/") {
		t.Errorf("URL = %q", first.URL)
	}
	if first.AltText != "cloud computing" {
		t.Errorf("AltText = %q", first.AltText)
	}
}

type stubFinder struct {
	img types.ImageRef
	err error
}

func (f *stubFinder) Find(ctx context.Context, query string) (types.ImageRef, error) {
	return f.img, f.err
}

func TestFindOrPlaceholder(t *testing.T) {
	want := types.ImageRef{URL: "https://real.example/x.jpg", AltText: "x"}
	got, err := FindOrPlaceholder(context.Background(), &stubFinder{img: want}, "x")
	if err != nil {
		t.Fatalf("FindOrPlaceholder: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFindOrPlaceholderDegrades(t *testing.T) {
	tests := []struct {
		name   string
		finder Finder
	}{
		{"nil finder", nil},
		{"finder error", &stubFinder{err: errors.New("rate limited")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindOrPlaceholder(context.Background(), tt.finder, "query")
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("err = %v, want ErrUnavailable", err)
			}
			if !got.Placeholder || got.URL == "" {
				t.Errorf("expected a placeholder image, got %+v", got)
			}
		})
	}
}
