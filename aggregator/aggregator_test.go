package aggregator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/webify-cli/webify/source"
)

// stubSource requests "<id>/<terms>/<page>" and parses "more|t1,t2".
type stubSource struct{ id string }

func (s stubSource) ID() string   { return s.id }
func (s stubSource) Name() string { return strings.ToUpper(s.id) }

func (s stubSource) BuildRequest(q source.Query) string {
	return fmt.Sprintf("%s/%s/%d", s.id, q.Terms, q.Page)
}

func (s stubSource) ParseResults(raw string) ([]*source.Result, bool, error) {
	flag, titles, _ := strings.Cut(raw, "|")
	var results []*source.Result
	for _, t := range strings.Split(titles, ",") {
		if t != "" {
			results = append(results, source.NewResult(t, t, s))
		}
	}
	return results, flag == "more", nil
}

func (s stubSource) ResolveURL(_ context.Context, r *source.Result) (string, error) {
	return s.id + "://" + r.Link(), nil
}

type stubFetcher struct {
	mu     sync.Mutex
	bodies map[string]string
	calls  int
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	body, ok := f.bodies[url]
	if !ok {
		return "", errors.New("unreachable")
	}
	return body, nil
}

func titles(results []*source.Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Title())
	}
	return out
}

func TestSearch(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		Convey(fmt.Sprintf("Given three sources (parallel=%t)", parallel), t, func() {
			fetcher := &stubFetcher{bodies: map[string]string{
				"a/x/1": "more|a1,a2",
				"b/x/1": "more|b1",
				"c/x/1": "end|c1",
				"a/x/2": "end|a3",
				"b/x/2": "end|b2",
			}}
			agg := New(fetcher, stubSource{"a"}, stubSource{"b"}, stubSource{"c"})
			agg.Parallel = parallel
			ctx := context.Background()

			Convey("When searching", func() {
				results, err := agg.Search(ctx, "x")

				Convey("Then results should be grouped in registration order", func() {
					So(err, ShouldBeNil)
					So(titles(results), ShouldResemble, []string{"a1", "a2", "b1", "c1"})
				})

				Convey("And searching with empty text", func() {
					before := fetcher.calls
					cached, err := agg.Search(ctx, "  ")

					Convey("Then cached results should come back without requests", func() {
						So(err, ShouldBeNil)
						So(titles(cached), ShouldResemble, titles(results))
						So(fetcher.calls, ShouldEqual, before)
					})
				})

				Convey("And turning the page", func() {
					next, err := agg.ChangePage(ctx, 1)

					Convey("Then only sources with more results should move", func() {
						So(err, ShouldBeNil)
						So(titles(next), ShouldResemble, []string{"a3", "b2", "c1"})
						So(agg.Cursors()[2].Page(), ShouldEqual, 1)
					})
				})
			})

			Convey("When the cursor list is modified by a caller", func() {
				cursors := agg.Cursors()
				cursors[0] = nil
				cursors = append(cursors[:1], cursors[2:]...)

				Convey("Then the aggregator should keep its own cursors", func() {
					So(cursors, ShouldHaveLength, 2)
					So(agg.Cursors(), ShouldHaveLength, 3)
					So(agg.Cursors()[0], ShouldNotBeNil)
					So(agg.Cursors()[0].Source().ID(), ShouldEqual, "a")
				})
			})

			Convey("When one source fails", func() {
				delete(fetcher.bodies, "b/x/1")
				results, err := agg.Search(ctx, "x")

				Convey("Then the others should still answer", func() {
					So(err, ShouldNotBeNil)
					So(errors.Is(err, source.ErrTransport), ShouldBeTrue)
					So(titles(results), ShouldResemble, []string{"a1", "a2", "c1"})
				})
			})
		})
	}
}

func TestLookup(t *testing.T) {
	Convey("Given an aggregator", t, func() {
		agg := New(&stubFetcher{}, stubSource{"a"}, stubSource{"b"})

		Convey("Then sources should be found by id", func() {
			s, ok := agg.Source("b")
			So(ok, ShouldBeTrue)
			So(s.Name(), ShouldEqual, "B")

			_, ok = agg.Source("z")
			So(ok, ShouldBeFalse)
		})

		Convey("Then groups should be empty before any search", func() {
			groups := agg.Groups()
			So(groups, ShouldHaveLength, 2)
			So(groups["a"], ShouldBeEmpty)
		})

		Convey("Then the per-page default should be positive", func() {
			So(agg.ResultsPerPage, ShouldBeGreaterThan, 0)
		})
	})
}
