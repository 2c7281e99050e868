package mini

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/samber/lo"
	"github.com/webify-cli/webify/query"
)

const promptPrefix = "> "

type reader interface {
	// Read returns the next line, or io.EOF when input is exhausted.
	Read() (string, error)
}

// scanReader reads lines from a non-interactive stream.
type scanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newScanReader(in io.Reader, out io.Writer) *scanReader {
	return &scanReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scanReader) Read() (string, error) {
	fmt.Fprint(r.out, promptPrefix)
	if !r.scanner.Scan() {
		fmt.Fprintln(r.out)
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// promptReader reads lines from a terminal with completion and history.
type promptReader struct {
	m       *mini
	history []string
}

func newPromptReader(m *mini) *promptReader {
	return &promptReader{m: m}
}

func (r *promptReader) Read() (string, error) {
	line := prompt.Input(
		promptPrefix,
		r.m.complete,
		prompt.OptionHistory(r.history),
		prompt.OptionPrefixTextColor(prompt.Purple),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionDescriptionBGColor(prompt.LightGray),
	)

	if strings.TrimSpace(line) != "" {
		r.history = append(r.history, line)
	}
	return line, nil
}

// complete suggests command names, and past searches after a slash.
func (m *mini) complete(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()
	if strings.Contains(text, " ") && !strings.HasPrefix(text, "/") {
		return nil
	}

	if terms, ok := strings.CutPrefix(text, "/"); ok {
		if terms == "" || strings.Contains(terms, " ") {
			return nil
		}
		return lo.Map(query.SuggestMany(terms), func(q string, _ int) prompt.Suggest {
			return prompt.Suggest{Text: "/" + q, Description: "search"}
		})
	}

	suggests := lo.Map(m.commands, func(c *command, _ int) prompt.Suggest {
		return prompt.Suggest{Text: c.names[0], Description: c.help}
	})
	return prompt.FilterHasPrefix(suggests, text, true)
}
