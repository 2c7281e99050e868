package mini

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/webify-cli/webify/icon"
	"github.com/webify-cli/webify/source"
	"github.com/webify-cli/webify/style"
)

// printResults writes one "id title source" row per result.
func (m *mini) printResults(results []*source.Result) {
	if len(results) == 0 {
		fmt.Fprintln(m.out, style.Faint("no results"))
		return
	}

	for i, r := range results {
		fmt.Fprintf(m.out, "%5d %s %s\n", i, m.cell(r.Title()), sourceName(r))
	}
}

// printPages writes the page, result count and end marker of every source.
func (m *mini) printPages() {
	agg := m.player.Aggregator()
	groups := agg.Groups()

	pages := lo.Map(agg.Cursors(), func(c *source.Cursor, _ int) string {
		s := fmt.Sprintf("%s p%d:%d", c.Source().ID(), c.Page(), len(groups[c.Source().ID()]))
		if !c.MoreResults() {
			s += " end"
		}
		return s
	})
	fmt.Fprintln(m.out, style.Faint(strings.Join(pages, "  ")))
}

// printQueue lists the queue, marking the current track while playing.
func (m *mini) printQueue(items []*source.Result) {
	if len(items) == 0 {
		fmt.Fprintln(m.out, style.Faint("queue is empty"))
		return
	}

	track, playing := m.player.Track()
	for i, r := range items {
		mark := icon.Get(icon.Queue)
		if playing && i == track {
			mark = icon.Get(icon.Play)
		}
		fmt.Fprintf(m.out, "%s %3d %s %s\n", mark, i, m.cell(r.Title()), sourceName(r))
	}
	fmt.Fprintln(m.out, style.Faint(m.player.State().String()))
}

// cell truncates s to the title width and pads it to a fixed column.
func (m *mini) cell(s string) string {
	w := uint(m.width)
	return padding.String(truncate.String(s, w), w)
}

func sourceName(r *source.Result) string {
	if r.Source() == nil {
		return ""
	}
	return style.Faint(r.Source().Name())
}

// warn prints each per-source failure of an aggregated error on its own line.
func (m *mini) warn(err error) {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	for _, e := range errs {
		fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Warn), e)
	}
}

func (m *mini) fail(err error) {
	fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Fail), err)
}
