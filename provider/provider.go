// Package provider registers the built-in search sources.
package provider

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/provider/dailymotion"
	"github.com/webify-cli/webify/provider/pleer"
	"github.com/webify-cli/webify/provider/youtube"
	"github.com/webify-cli/webify/source"
)

// Provider describes a source and how to build it.
type Provider struct {
	ID           string
	Name         string
	CreateSource func(fetcher source.Fetcher) source.Source
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers in registration order.
// Aggregated results are grouped by this order.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   dailymotion.ID,
			Name: dailymotion.Name,
			CreateSource: func(source.Fetcher) source.Source {
				return dailymotion.New()
			},
		},
		{
			ID:   youtube.ID,
			Name: youtube.Name,
			CreateSource: func(source.Fetcher) source.Source {
				return youtube.New()
			},
		},
		{
			ID:   pleer.ID,
			Name: pleer.Name,
			CreateSource: func(fetcher source.Fetcher) source.Source {
				return pleer.New(fetcher)
			},
		},
	}
}

// Get finds a provider by id or name.
func Get(name string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.ID == name || p.Name == name
	})
}

// Enabled returns the providers listed in sources.default, or all of them when the list is empty.
// Unknown ids are ignored.
func Enabled() []*Provider {
	ids := viper.GetStringSlice(key.DefaultSources)
	if len(ids) == 0 {
		return Builtins()
	}

	return lo.Filter(Builtins(), func(p *Provider, _ int) bool {
		return lo.Contains(ids, p.ID) || lo.Contains(ids, p.Name)
	})
}
