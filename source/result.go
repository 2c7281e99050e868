package source

import (
	"context"
	"fmt"
)

// Result is one search hit. Its link is only meaningful to the source that produced it.
type Result struct {
	title  string
	link   string
	source Source
}

// NewResult binds a title and a source-specific link token to their origin.
func NewResult(title, link string, src Source) *Result {
	return &Result{title: title, link: link, source: src}
}

// Title returns the display title.
func (r *Result) Title() string {
	return r.title
}

// Link returns the opaque, source-specific link token.
func (r *Result) Link() string {
	return r.link
}

// Source returns the source that produced the result.
func (r *Result) Source() Source {
	return r.source
}

// Resolve asks the originating source for a playable stream URL.
func (r *Result) Resolve(ctx context.Context) (string, error) {
	if r.source == nil {
		return "", fmt.Errorf("%w: %q has no source", ErrUnresolvable, r.title)
	}
	return r.source.ResolveURL(ctx, r)
}

func (r *Result) String() string {
	if r.source == nil {
		return r.title
	}
	return fmt.Sprintf("%s (%s)", r.title, r.source.ID())
}
