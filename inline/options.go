package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/webify-cli/webify/aggregator"
	"github.com/webify-cli/webify/source"
)

// Selector narrows the merged results before output.
type Selector func([]*source.Result) []*source.Result

type Options struct {
	Out        io.Writer
	Aggregator *aggregator.Aggregator
	Query      string
	Page       int
	Limit      int
	Json       bool
	Resolve    bool
	Selector   mo.Option[Selector]
}

// ParseSelector understands first, last, all, an index, a from-to range
// and @substring@ (case-insensitive title match).
func ParseSelector(description string) (Selector, error) {
	switch description {
	case "first":
		return func(results []*source.Result) []*source.Result {
			return lo.Slice(results, 0, 1)
		}, nil
	case "last":
		return func(results []*source.Result) []*source.Result {
			return lo.Slice(results, len(results)-1, len(results))
		}, nil
	case "all":
		return func(results []*source.Result) []*source.Result {
			return results
		}, nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 1 {
		needle := strings.ToLower(strings.Trim(description, "@"))
		return func(results []*source.Result) []*source.Result {
			return lo.Filter(results, func(r *source.Result, _ int) bool {
				return strings.Contains(strings.ToLower(r.Title()), needle)
			})
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		a, errA := strconv.ParseUint(from, 10, 16)
		b, errB := strconv.ParseUint(to, 10, 16)
		if errA != nil || errB != nil || a > b {
			return nil, fmt.Errorf("invalid range: %s", description)
		}
		return func(results []*source.Result) []*source.Result {
			return lo.Slice(results, int(a), int(b)+1)
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid selector: %s", description)
	}
	return func(results []*source.Result) []*source.Result {
		if len(results) == 0 {
			return results
		}
		i := min(int(idx), len(results)-1)
		return results[i : i+1]
	}, nil
}
