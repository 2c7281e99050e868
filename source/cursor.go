package source

import (
	"context"
	"fmt"

	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Cursor owns the pagination state of one source: the last successful query,
// the results it produced and whether the source reported more pages.
// Only Search and ChangePage mutate it.
type Cursor struct {
	source  Source
	fetcher Fetcher

	query   mo.Option[Query]
	results []*Result
	more    bool
}

// NewCursor returns a cursor with no results that assumes more are available.
func NewCursor(src Source, fetcher Fetcher) *Cursor {
	return &Cursor{
		source:  src,
		fetcher: fetcher,
		query:   mo.None[Query](),
		more:    true,
	}
}

// Source returns the source this cursor pages through.
func (c *Cursor) Source() Source {
	return c.source
}

// Results returns the results of the last successful search.
func (c *Cursor) Results() []*Result {
	return slices.Clone(c.results)
}

// MoreResults reports whether the last response announced another page.
func (c *Cursor) MoreResults() bool {
	return c.more
}

// Query returns the last successfully executed query.
func (c *Cursor) Query() (Query, bool) {
	return c.query.Get()
}

// Page returns the current page, 1 before the first search.
func (c *Cursor) Page() int {
	if q, ok := c.query.Get(); ok {
		return q.Page
	}
	return 1
}

// Search fetches and parses q. On any failure the previous results,
// query and more flag are kept.
func (c *Cursor) Search(ctx context.Context, q Query) error {
	raw, err := c.fetcher.Fetch(ctx, c.source.BuildRequest(q))
	if err != nil {
		return fmt.Errorf("%s: %w: %w", c.source.ID(), ErrTransport, err)
	}

	results, more, err := c.source.ParseResults(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", c.source.ID(), err)
	}

	c.results = results
	c.more = more
	c.query = mo.Some(q)
	return nil
}

// ChangePage replays the last query moved by incr pages. It does nothing when
// there is no previous query, when moving forward without more results or
// when moving back from the first page.
func (c *Cursor) ChangePage(ctx context.Context, incr int) error {
	q, ok := c.query.Get()
	switch {
	case !ok, incr == 0:
		return nil
	case incr > 0 && !c.more:
		return nil
	case incr < 0 && q.Page == 1:
		return nil
	}

	return c.Search(ctx, q.Turn(incr))
}
