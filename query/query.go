// Package query keeps the history of search terms and suggests past ones.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/where"
	"golang.org/x/exp/slices"
)

// term is a remembered search and how often it was used.
type term struct {
	Text string `json:"query"`
	Rank int    `json:"rank"`
}

var terms = gache.New[map[string]*term](&gache.Options{
	Path:       where.Queries(),
	FileSystem: &filesystem.GacheFs{},
})

// memo holds ranked matches per input until the next Remember.
var memo = struct {
	sync.Mutex
	matches map[string][]string
}{matches: make(map[string][]string)}

func load() map[string]*term {
	saved, expired, err := terms.Get()
	if err != nil || expired || saved == nil {
		return make(map[string]*term)
	}
	return saved
}

// Remember adds weight to the rank of text, adding it when new.
func Remember(text string, weight int) error {
	text = normalize(text)
	if text == "" {
		return nil
	}

	saved := load()
	if t, ok := saved[text]; ok {
		t.Rank += weight
	} else {
		saved[text] = &term{Text: text, Rank: weight}
	}

	if err := terms.Set(saved); err != nil {
		return err
	}

	memo.Lock()
	clear(memo.matches)
	memo.Unlock()
	return nil
}

// Suggest returns the best ranked past search matching text.
func Suggest(text string) mo.Option[string] {
	return mo.TupleToOption(lo.First(SuggestMany(text)))
}

// SuggestMany returns past searches fuzzily matching text, best ranked first.
// It is empty when search.show_query_suggestions is off.
func SuggestMany(text string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	text = normalize(text)

	memo.Lock()
	defer memo.Unlock()

	if matches, ok := memo.matches[text]; ok {
		return matches
	}

	found := lo.Filter(lo.Values(load()), func(t *term, _ int) bool {
		return fuzzy.Match(text, t.Text)
	})
	slices.SortFunc(found, func(a, b *term) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Text, b.Text)
	})

	matches := lo.Map(found, func(t *term, _ int) string { return t.Text })
	memo.matches[text] = matches
	return matches
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
