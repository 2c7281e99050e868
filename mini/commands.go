package mini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/webify-cli/webify/icon"
	"github.com/webify-cli/webify/log"
	"github.com/webify-cli/webify/playlist"
	"github.com/webify-cli/webify/query"
	"github.com/webify-cli/webify/util"
)

type command struct {
	names []string
	usage string
	help  string
	run   func(ctx context.Context, m *mini, args []string) error
}

func newCommands() []*command {
	return []*command{
		{names: []string{"/"}, usage: "/<terms>", help: "search every source, / alone shows the last results"},
		{names: []string{"n"}, usage: "n [count]", help: "next page", run: turnPage(1)},
		{names: []string{"p"}, usage: "p [count]", help: "previous page", run: turnPage(-1)},
		{names: []string{"a"}, usage: "a <id>", help: "append a result to the queue", run: enqueue(false)},
		{names: []string{"i"}, usage: "i <id>", help: "insert a result at the front of the queue", run: enqueue(true)},
		{names: []string{"r"}, usage: "r <pos>", help: "remove an item from the queue", run: dequeue},
		{names: []string{"l"}, usage: "l", help: "list the queue", run: listQueue},
		{names: []string{"play"}, usage: "play", help: "play the queue, ctrl+c stops", run: play},
		{names: []string{"save"}, usage: "save <name>", help: "save the queue as a playlist", run: save},
		{names: []string{"load"}, usage: "load <name>", help: "replace the queue with a saved playlist", run: load},
		{names: []string{"v"}, usage: "v", help: "toggle video output", run: toggleVideo},
		{names: []string{"h", "help"}, usage: "h", help: "show this help", run: help},
		{names: []string{"q", "exit"}, usage: "q", help: "quit", run: func(context.Context, *mini, []string) error {
			return errQuit
		}},
	}
}

func (m *mini) lookup(name string) (*command, bool) {
	return lo.Find(m.commands, func(c *command) bool {
		return c.run != nil && lo.Contains(c.names, name)
	})
}

// unknown reports name with the closest command when one is near enough.
func (m *mini) unknown(name string) error {
	names := lo.FlatMap(m.commands, func(c *command, _ int) []string {
		return c.names
	})

	closest := lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	if levenshtein.Distance(name, closest) <= 2 && len(name) > 1 {
		return fmt.Errorf("unknown command: %s, did you mean %s?", name, closest)
	}
	return fmt.Errorf("unknown command: %s", name)
}

func (m *mini) search(ctx context.Context, terms string) error {
	terms = strings.TrimSpace(terms)

	results, err := m.player.Search(ctx, terms)
	if err != nil {
		m.warn(err)
	}

	if terms != "" {
		if err := query.Remember(terms, 1); err != nil {
			log.Warnf("remember query: %s", err)
		}
	}

	m.printResults(results)
	m.printPages()
	return nil
}

func turnPage(direction int) func(context.Context, *mini, []string) error {
	return func(ctx context.Context, m *mini, args []string) error {
		count := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid page count: %s", args[0])
			}
			count = n
		}

		results, err := m.player.ChangePage(ctx, direction*count)
		if err != nil {
			m.warn(err)
		}

		m.printResults(results)
		m.printPages()
		return nil
	}
}

// index parses the first argument as a position in a list of n items.
func index(args []string, n int) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("missing id")
	}

	i, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", args[0])
	}

	if i < 0 || i >= n {
		return 0, fmt.Errorf("id %d out of range, have %s", i, util.Quantify(n, "item", "items"))
	}
	return i, nil
}

func enqueue(front bool) func(context.Context, *mini, []string) error {
	return func(_ context.Context, m *mini, args []string) error {
		results := m.player.Results()
		i, err := index(args, len(results))
		if err != nil {
			return err
		}

		m.player.Queue(results[i], front)
		m.success(fmt.Sprintf("queued %s", results[i].Title()))
		return nil
	}
}

func dequeue(_ context.Context, m *mini, args []string) error {
	i, err := index(args, m.player.Playlist().Len())
	if err != nil {
		return err
	}

	item, _ := m.player.Playlist().At(i)
	if err := m.player.Dequeue(i); err != nil {
		return err
	}
	m.success(fmt.Sprintf("removed %s", item.Title()))
	return nil
}

func listQueue(_ context.Context, m *mini, _ []string) error {
	m.printQueue(m.player.Playlist().Items())
	return nil
}

func play(ctx context.Context, m *mini, _ []string) error {
	if m.player.Playlist().Len() == 0 {
		return errors.New("queue is empty")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintf(m.out, "%s playing %s, ctrl+c to stop\n", icon.Get(icon.Play), util.Quantify(m.player.Playlist().Len(), "item", "items"))

	report := m.player.Play(ctx)
	for _, f := range report.Failed {
		m.fail(fmt.Errorf("%s: %w", f.Item.Title(), f.Err))
	}

	m.success(fmt.Sprintf("played %s", util.Quantify(len(report.Played), "item", "items")))
	return nil
}

func save(_ context.Context, m *mini, args []string) error {
	if len(args) == 0 {
		return errors.New("missing playlist name")
	}

	pl := playlist.New(strings.Join(args, " "))
	for _, item := range m.player.Playlist().Items() {
		pl.Add(item, false)
	}

	if err := pl.SaveFile(); err != nil {
		return err
	}

	m.success(fmt.Sprintf("saved %s to %s", util.Quantify(pl.Len(), "item", "items"), playlist.Path(pl.Name)))
	return nil
}

func load(ctx context.Context, m *mini, args []string) error {
	if len(args) == 0 {
		return errors.New("missing playlist name")
	}

	pl, err := playlist.LoadFile(strings.Join(args, " "), m.player.Aggregator().Source)
	if err != nil {
		return err
	}

	m.player.QueuePlaylist(ctx, pl, false)
	m.printQueue(m.player.Playlist().Items())
	return nil
}

func toggleVideo(_ context.Context, m *mini, _ []string) error {
	toggler, ok := m.player.Backend().(interface{ ToggleVideo() bool })
	if !ok {
		return errors.New("player has no video output")
	}

	if toggler.ToggleVideo() {
		m.success("video on")
	} else {
		m.success("video off")
	}
	return nil
}

func help(_ context.Context, m *mini, _ []string) error {
	for _, c := range m.commands {
		usage := c.usage
		if len(c.names) > 1 {
			usage += ", " + strings.Join(c.names[1:], ", ")
		}
		fmt.Fprintf(m.out, "  %-14s %s\n", usage, c.help)
	}
	return nil
}

func (m *mini) success(msg string) {
	fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Success), msg)
}
