package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// fakeSource answers BuildRequest with "fake/<page>" and parses bodies shaped
// like "more|title1,title2".
type fakeSource struct{}

func (fakeSource) ID() string   { return "fake" }
func (fakeSource) Name() string { return "Fake" }

func (fakeSource) BuildRequest(q Query) string {
	return fmt.Sprintf("fake/%d", q.Page)
}

func (s fakeSource) ParseResults(raw string) ([]*Result, bool, error) {
	flag, titles, ok := strings.Cut(raw, "|")
	if !ok {
		return nil, false, ErrParse
	}

	var results []*Result
	for _, t := range strings.Split(titles, ",") {
		if t != "" {
			results = append(results, NewResult(t, "link-"+t, s))
		}
	}
	return results, flag == "more", nil
}

func (fakeSource) ResolveURL(_ context.Context, r *Result) (string, error) {
	return "stream://" + r.Link(), nil
}

var errDown = errors.New("connection refused")

// fakeFetcher serves canned bodies by URL and fails for anything else.
type fakeFetcher struct {
	bodies map[string]string
	calls  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	body, ok := f.bodies[url]
	if !ok {
		return "", errDown
	}
	return body, nil
}
