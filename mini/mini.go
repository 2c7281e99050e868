// Package mini implements the interactive command line for searching, queueing and playing.
package mini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/webify-cli/webify/constant"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/player"
	"github.com/webify-cli/webify/style"
	"github.com/webify-cli/webify/util"
	"golang.org/x/term"
)

// Options of the command loop. Nil streams default to the process stdio.
type Options struct {
	In  io.Reader
	Out io.Writer
}

var errQuit = errors.New("quit")

type mini struct {
	player   *player.Player
	out      io.Writer
	width    int
	commands []*command
}

func newMini(p *player.Player, out io.Writer) *mini {
	width := viper.GetInt(key.MiniTitleWidth)
	if width <= 0 {
		width = 70
	}

	m := &mini{
		player: p,
		out:    out,
		width:  width,
	}
	m.commands = newCommands()
	return m
}

// Run reads commands until q, exit or the end of input.
func Run(ctx context.Context, p *player.Player, options *Options) error {
	if options == nil {
		options = &Options{}
	}

	in, out := options.In, options.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	m := newMini(p, out)

	var r reader
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r = newPromptReader(m)
		if w, _, err := util.TerminalSize(); err == nil && w-20 < m.width {
			m.width = max(w-20, 10)
		}
	} else {
		r = newScanReader(in, out)
	}

	fmt.Fprintln(out, style.Title(util.Capitalize(constant.Webify)))

	for {
		line, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if err := m.exec(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			m.fail(err)
		}
	}
}

// exec runs one input line.
func (m *mini) exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if strings.HasPrefix(line, "/") {
		return m.search(ctx, strings.TrimPrefix(line, "/"))
	}

	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]

	c, ok := m.lookup(name)
	if !ok {
		return m.unknown(name)
	}
	return c.run(ctx, m, args)
}
