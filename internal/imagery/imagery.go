// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imagery finds illustrations for post sections via an image search
// collaborator, falling back to stock placeholders when the collaborator
// fails or is unconfigured.
package imagery

import (
	"context"
	"errors"
	"hash/fnv"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// ErrUnavailable reports that the image collaborator errored or found
// nothing. Callers substitute a placeholder and continue.
var ErrUnavailable = errors.New("image unavailable")

// Finder queries the image search collaborator. Implementations issue a
// single request per call and return ErrUnavailable (possibly wrapped) when
// no image can be served.
type Finder interface {
	Find(ctx context.Context, query string) (types.ImageRef, error)
}

// defaultImages is a fixed set of stock technology images used when the
// collaborator cannot serve a real one.
var defaultImages = []string{
	"https://images.unsplash.com/photo-1620712943543-bcc4688e7485",
	"https://images.unsplash.com/photo-1550751827-4bd374c3f58b",
	"https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5",
	"https://images.unsplash.com/photo-1518770660439-4636190af475",
	"https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
	"https://images.unsplash.com/photo-1558346547-4439467bd1d5",
	"https://images.unsplash.com/photo-1535378620166-273708d44e4c",
	"https://images.unsplash.com/photo-1531297484001-80022131f5a1",
	"https://images.unsplash.com/photo-1555949963-ff9fe0c870eb",
	"https://images.unsplash.com/photo-1581472723648-909f4851d4ae",
}

// Placeholder returns a stock image for the query. The choice is a hash of
// the query so repeated runs over the same text pick the same image.
func Placeholder(query string) types.ImageRef {
	h := fnv.New32a()
	h.Write([]byte(query))
	url := defaultImages[int(h.Sum32())%len(defaultImages)]
	return types.ImageRef{
		URL:         url,
		AltText:     query,
		Attribution: "Unsplash",
		Placeholder: true,
	}
}

// FindOrPlaceholder asks the finder for an image and degrades to a
// placeholder on any failure.
func FindOrPlaceholder(ctx context.Context, f Finder, query string) (types.ImageRef, error) {
	if f == nil {
		return Placeholder(query), ErrUnavailable
	}
	img, err := f.Find(ctx, query)
	if err != nil {
		return Placeholder(query), errors.Join(ErrUnavailable, err)
	}
	return img, nil
}
