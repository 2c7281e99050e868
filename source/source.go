// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import "context"

// Source defines the capabilities of one remote media search backend.
// Implementations are stateless with respect to pagination; a Cursor owns that state.
type Source interface {
	// ID returns the short identifier of the source, used to re-bind persisted items.
	ID() string

	// Name returns the human readable name of the source.
	Name() string

	// BuildRequest translates a generic query into the source's request URL.
	BuildRequest(q Query) string

	// ParseResults decodes a raw response into results and reports whether more pages are available.
	// An absent result container is zero results, not an error.
	ParseResults(raw string) (results []*Result, more bool, err error)

	// ResolveURL turns a result produced by this source into a directly playable stream URL.
	ResolveURL(ctx context.Context, r *Result) (string, error)
}

// Fetcher retrieves the body of a URL as text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
