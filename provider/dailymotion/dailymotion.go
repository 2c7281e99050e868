// Package dailymotion implements the Dailymotion video search source.
package dailymotion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/webify-cli/webify/source"
)

const (
	ID   = "dm"
	Name = "Dailymotion"
)

var params = source.Params{
	source.Fixed("sort", "relevance"),
	source.From("page", source.FieldPage),
	source.From("limit", source.FieldResultsPerPage),
	source.From("search", source.FieldTerms),
}

// Source searches the Dailymotion REST API. Results resolve to the public video page.
type Source struct {
	SearchURL string
	StreamURL string
}

// New returns a source pointed at the public API.
func New() *Source {
	return &Source{
		SearchURL: "https://api.dailymotion.com/videos",
		StreamURL: "http://www.dailymotion.com/video/%s",
	}
}

func (s *Source) ID() string   { return ID }
func (s *Source) Name() string { return Name }

func (s *Source) BuildRequest(q source.Query) string {
	return params.Encode(s.SearchURL, q)
}

type response struct {
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
	List    []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"list"`
}

// ParseResults maps list items to results when total is positive and takes has_more verbatim.
func (s *Source) ParseResults(raw string) ([]*source.Result, bool, error) {
	var resp response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, false, fmt.Errorf("%w: %w", source.ErrParse, err)
	}

	results := make([]*source.Result, 0, len(resp.List))
	if resp.Total > 0 {
		for _, item := range resp.List {
			results = append(results, source.NewResult(item.Title, item.ID, s))
		}
	}

	return results, resp.HasMore, nil
}

func (s *Source) ResolveURL(_ context.Context, r *source.Result) (string, error) {
	return fmt.Sprintf(s.StreamURL, r.Link()), nil
}
