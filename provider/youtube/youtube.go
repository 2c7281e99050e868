// Package youtube implements the YouTube data feed search source.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/webify-cli/webify/source"
)

const (
	ID   = "yt"
	Name = "YouTube"
)

var params = source.Params{
	source.Fixed("v", "2"),
	source.From("max-results", source.FieldResultsPerPage),
	source.From("start-index", source.FieldStartIndex),
	source.Fixed("alt", "json"),
	source.From("q", source.FieldTerms),
}

// Source searches the YouTube JSON feed, which paginates by start index.
type Source struct {
	SearchURL string
	StreamURL string
}

// New returns a source pointed at the public feed.
func New() *Source {
	return &Source{
		SearchURL: "http://gdata.youtube.com/feeds/api/videos",
		StreamURL: "http://www.youtube.com/v/%s",
	}
}

func (s *Source) ID() string   { return ID }
func (s *Source) Name() string { return Name }

func (s *Source) BuildRequest(q source.Query) string {
	return params.Encode(s.SearchURL, q)
}

// ParseResults reads feed.entry and the openSearch counters. More results are
// reported while startIndex < totalResults - itemsPerPage.
func (s *Source) ParseResults(raw string) ([]*source.Result, bool, error) {
	feed, _, _, err := jsonparser.Get([]byte(raw), "feed")
	if err != nil {
		return nil, false, fmt.Errorf("%w: feed: %w", source.ErrParse, err)
	}

	results, err := s.entries(feed)
	if err != nil {
		return nil, false, err
	}

	startIndex, err := counter(feed, "openSearch$startIndex")
	if err != nil {
		return nil, false, err
	}
	total, err := counter(feed, "openSearch$totalResults")
	if err != nil {
		return nil, false, err
	}
	perPage, err := counter(feed, "openSearch$itemsPerPage")
	if err != nil {
		return nil, false, err
	}

	return results, startIndex < total-perPage, nil
}

func (s *Source) entries(feed []byte) ([]*source.Result, error) {
	results := make([]*source.Result, 0)

	list, kind, _, err := jsonparser.Get(feed, "entry")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError), err == nil && kind == jsonparser.Null:
		return results, nil
	case err != nil:
		return nil, fmt.Errorf("%w: entry: %w", source.ErrParse, err)
	case kind != jsonparser.Array:
		return nil, fmt.Errorf("%w: entry is %s, not an array", source.ErrParse, kind)
	}

	var entryErr error
	_, err = jsonparser.ArrayEach(list, func(entry []byte, _ jsonparser.ValueType, _ int, err error) {
		if err != nil || entryErr != nil {
			return
		}

		title, err := jsonparser.GetString(entry, "title", "$t")
		if err != nil {
			entryErr = fmt.Errorf("%w: entry title: %w", source.ErrParse, err)
			return
		}
		id, err := jsonparser.GetString(entry, "id", "$t")
		if err != nil {
			entryErr = fmt.Errorf("%w: entry id: %w", source.ErrParse, err)
			return
		}

		results = append(results, source.NewResult(title, id[strings.LastIndex(id, "/")+1:], s))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: entry: %w", source.ErrParse, err)
	}

	return results, entryErr
}

// counter reads an openSearch value, which the feed wraps as {"$t": n}
// with n either a number or a numeric string.
func counter(feed []byte, name string) (int, error) {
	value, kind, _, err := jsonparser.Get(feed, name, "$t")
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", source.ErrParse, name, err)
	}

	switch kind {
	case jsonparser.Number, jsonparser.String:
		n, err := strconv.Atoi(string(value))
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", source.ErrParse, name, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s is %s", source.ErrParse, name, kind)
	}
}

func (s *Source) ResolveURL(_ context.Context, r *source.Result) (string, error) {
	return fmt.Sprintf(s.StreamURL, r.Link()), nil
}
