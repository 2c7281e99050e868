// Package pleer implements the Pleer music search source.
// Search pages are HTML, stream URLs come from a second JSON request.
package pleer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/webify-cli/webify/source"
)

const (
	ID   = "pleer"
	Name = "Pleer"
)

var params = source.Params{
	source.From("q", source.FieldTerms),
	source.Fixed("target", "tracks"),
	source.From("page", source.FieldPage),
}

// Source scrapes track listings from pleer search pages.
type Source struct {
	SearchURL string
	StreamURL string

	fetcher source.Fetcher
}

// New returns a source that resolves stream URLs through fetcher.
func New(fetcher source.Fetcher) *Source {
	return &Source{
		SearchURL: "http://pleer.com/search",
		StreamURL: "http://pleer.com/site_api/files/get_url",
		fetcher:   fetcher,
	}
}

func (s *Source) ID() string   { return ID }
func (s *Source) Name() string { return Name }

func (s *Source) BuildRequest(q source.Query) string {
	return params.Encode(s.SearchURL, q)
}

// ParseResults collects every li start tag carrying a duration attribute.
// Titles are "singer | song" and the link attribute is the track token.
// Pleer reports no page count, so more is true whenever the page had tracks.
func (s *Source) ParseResults(raw string) ([]*source.Result, bool, error) {
	tracks, err := scanTracks(raw)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", source.ErrParse, err)
	}

	results := make([]*source.Result, 0, len(tracks))
	for _, t := range tracks {
		results = append(results, source.NewResult(t.title(), t.link, s))
	}

	return results, len(results) > 0, nil
}

type envelope struct {
	TrackLink *string `json:"track_link"`
}

// ResolveURL asks the download endpoint for the track's stream location.
func (s *Source) ResolveURL(ctx context.Context, r *source.Result) (string, error) {
	endpoint := s.StreamURL + "?" + url.Values{
		"action": {"download"},
		"id":     {r.Link()},
	}.Encode()

	raw, err := s.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %w", source.ErrTransport, err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return "", fmt.Errorf("%w: %w", source.ErrParse, err)
	}

	if env.TrackLink == nil || *env.TrackLink == "" {
		return "", fmt.Errorf("%w: no track link for %q", source.ErrUnresolvable, r.Title())
	}

	return *env.TrackLink, nil
}
