// Package aggregator fans one search out to several sources and merges the results.
package aggregator

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/log"
	"github.com/webify-cli/webify/source"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const defaultResultsPerPage = 5

// Aggregator owns one cursor per source. Results are always grouped by
// source in the order the sources were given.
// Calls are serialized; a concurrent caller waits for the running one.
type Aggregator struct {
	ResultsPerPage int
	Parallel       bool

	mu      sync.Mutex
	cursors []*source.Cursor
}

// New creates the cursors for sources, fetching through fetcher.
func New(fetcher source.Fetcher, sources ...source.Source) *Aggregator {
	perPage := viper.GetInt(key.SearchResultsPerPage)
	if perPage < 1 {
		perPage = defaultResultsPerPage
	}

	return &Aggregator{
		ResultsPerPage: perPage,
		Parallel:       viper.GetBool(key.SearchParallel),
		cursors: lo.Map(sources, func(s source.Source, _ int) *source.Cursor {
			return source.NewCursor(s, fetcher)
		}),
	}
}

// Search runs text against every source. Empty text issues no requests and
// returns the cached results of the previous search.
// Failing sources keep their previous state; their errors are joined into
// the returned error while the merged results stay valid.
func (a *Aggregator) Search(ctx context.Context, text string) ([]*source.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return a.merged(), nil
	}

	q := source.NewQuery(text, a.ResultsPerPage)
	err := a.each(ctx, func(ctx context.Context, c *source.Cursor) error {
		return c.Search(ctx, q)
	})

	return a.merged(), err
}

// ChangePage moves every cursor by incr pages. Cursors that cannot move stay put.
func (a *Aggregator) ChangePage(ctx context.Context, incr int) ([]*source.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.each(ctx, func(ctx context.Context, c *source.Cursor) error {
		return c.ChangePage(ctx, incr)
	})

	return a.merged(), err
}

// Results returns the merged results of the last search without fetching.
func (a *Aggregator) Results() []*source.Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.merged()
}

// Groups returns the current results of each source keyed by source id.
func (a *Aggregator) Groups() map[string][]*source.Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	groups := make(map[string][]*source.Result, len(a.cursors))
	for _, c := range a.cursors {
		groups[c.Source().ID()] = c.Results()
	}
	return groups
}

// Cursors returns a copy of the cursors in registration order.
func (a *Aggregator) Cursors() []*source.Cursor {
	a.mu.Lock()
	defer a.mu.Unlock()

	return slices.Clone(a.cursors)
}

// Source finds an aggregated source by id.
func (a *Aggregator) Source(id string) (source.Source, bool) {
	c, ok := lo.Find(a.cursors, func(c *source.Cursor) bool {
		return c.Source().ID() == id
	})
	if !ok {
		return nil, false
	}
	return c.Source(), true
}

func (a *Aggregator) merged() []*source.Result {
	var results []*source.Result
	for _, c := range a.cursors {
		results = append(results, c.Results()...)
	}
	return results
}

// each applies fn to every cursor, concurrently when Parallel is set.
// Each cursor is touched by exactly one goroutine, so order does not depend
// on completion time.
func (a *Aggregator) each(ctx context.Context, fn func(context.Context, *source.Cursor) error) error {
	errs := make([]error, len(a.cursors))

	if !a.Parallel {
		for i, c := range a.cursors {
			errs[i] = a.try(ctx, c, fn)
		}
		return errors.Join(errs...)
	}

	var g errgroup.Group
	for i, c := range a.cursors {
		g.Go(func() error {
			errs[i] = a.try(ctx, c, fn)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (a *Aggregator) try(ctx context.Context, c *source.Cursor, fn func(context.Context, *source.Cursor) error) error {
	err := fn(ctx, c)
	if err != nil {
		log.Fields(logrus.Fields{"source": c.Source().ID()}).Warn(err)
	}
	return err
}
