// Package inline implements the non-interactive search mode used by scripts.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/webify-cli/webify/log"
	"github.com/webify-cli/webify/source"
	"golang.org/x/sync/errgroup"
)

const resolveWorkers = 4

// Run searches every source once and writes the selected results.
// Source failures are reported in the output and do not fail the run.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	agg := options.Aggregator
	if options.Limit > 0 {
		agg.ResultsPerPage = options.Limit
	}

	output := &Output{Query: options.Query, Page: 1}

	results, err := agg.Search(ctx, options.Query)
	output.Errors = appendErrors(output.Errors, err)

	if options.Page > 1 {
		results, err = agg.ChangePage(ctx, options.Page-1)
		output.Errors = appendErrors(output.Errors, err)
		output.Page = options.Page
	}

	if selector, ok := options.Selector.Get(); ok {
		results = selector(results)
	}

	output.Result = lo.Map(results, func(r *source.Result, _ int) *Item {
		item := &Item{Title: r.Title(), Link: r.Link()}
		if r.Source() != nil {
			item.Source = r.Source().ID()
		}
		return item
	})

	if options.Resolve {
		resolve(ctx, results, output.Result)
	}

	if options.Json {
		return writeJson(options.Out, output)
	}
	return writeText(options.Out, output)
}

// resolve fills the stream or error of each item. Items are independent,
// so they are resolved concurrently.
func resolve(ctx context.Context, results []*source.Result, items []*Item) {
	var g errgroup.Group
	g.SetLimit(resolveWorkers)

	for i, r := range results {
		g.Go(func() error {
			stream, err := r.Resolve(ctx)
			if err != nil {
				log.Warnf("resolve %s: %s", r, err)
				items[i].Error = err.Error()
				return nil
			}
			items[i].Stream = stream
			return nil
		})
	}

	_ = g.Wait()
}

func appendErrors(errs []string, err error) []string {
	if err == nil {
		return errs
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			errs = append(errs, e.Error())
		}
		return errs
	}
	return append(errs, err.Error())
}

func writeJson(out io.Writer, output *Output) error {
	data, err := asJson(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// writeText prints "title<TAB>source<TAB>stream-or-link" lines; errors go to the log.
func writeText(out io.Writer, output *Output) error {
	for _, e := range output.Errors {
		log.Warn(e)
	}

	for _, item := range output.Result {
		target := item.Link
		switch {
		case item.Stream != "":
			target = item.Stream
		case item.Error != "":
			target = "!" + item.Error
		}

		if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", item.Title, item.Source, target); err != nil {
			return err
		}
	}
	return nil
}
