// Package history keeps a persistent record of played items.
package history

import (
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/source"
	"github.com/webify-cli/webify/where"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every record keyed by link and source.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Recent returns the records, most recently played first.
func Recent() ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	slices.SortFunc(records, func(a, b *Record) int {
		return b.PlayedAt.Compare(a.PlayedAt)
	})
	return records, nil
}

// Save records a play of result. Replaying an item bumps its play count.
func Save(result *source.Result, streamURL string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newRecord(result, streamURL)
	if existing, ok := saved[record.encode()]; ok {
		record.Plays = existing.Plays
	}
	record.Plays++

	saved[record.encode()] = record
	return cacher.Set(saved)
}

// Remove deletes a record.
func Remove(record *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.encode())
	return cacher.Set(saved)
}
