// Package playlist implements the ordered play queue and its persistence.
package playlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/webify-cli/webify/source"
)

// ErrIndex is returned for positions outside the playlist.
var ErrIndex = errors.New("index out of range")

// Playlist is an ordered list of results. It only ever contains results
// that were added explicitly or restored by Load.
type Playlist struct {
	Name  string
	items []*source.Result
}

// New returns an empty playlist.
func New(name string) *Playlist {
	return &Playlist{Name: name}
}

// Add appends item, or prepends it when front is set.
func (p *Playlist) Add(item *source.Result, front bool) {
	if front {
		p.items = append([]*source.Result{item}, p.items...)
		return
	}
	p.items = append(p.items, item)
}

// Remove deletes the item at idx and shifts the rest down.
func (p *Playlist) Remove(idx int) error {
	if idx < 0 || idx >= len(p.items) {
		return fmt.Errorf("%w: %d of %d", ErrIndex, idx, len(p.items))
	}
	p.items = append(p.items[:idx], p.items[idx+1:]...)
	return nil
}

// Clear empties the playlist.
func (p *Playlist) Clear() {
	p.items = nil
}

// Len returns the number of items.
func (p *Playlist) Len() int {
	return len(p.items)
}

// Items returns a copy of the items in play order.
func (p *Playlist) Items() []*source.Result {
	return append([]*source.Result(nil), p.items...)
}

// At returns the item at idx.
func (p *Playlist) At(idx int) (*source.Result, bool) {
	if idx < 0 || idx >= len(p.items) {
		return nil, false
	}
	return p.items[idx], true
}

type savedItem struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
}

type savedPlaylist struct {
	Name  string      `json:"name"`
	Items []savedItem `json:"items"`
}

// Save writes the playlist as JSON. Items are stored by title, link and source id.
func (p *Playlist) Save(w io.Writer) error {
	saved := savedPlaylist{
		Name: p.Name,
		Items: lo.Map(p.items, func(r *source.Result, _ int) savedItem {
			item := savedItem{Title: r.Title(), Link: r.Link()}
			if r.Source() != nil {
				item.Source = r.Source().ID()
			}
			return item
		}),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(saved)
}

// Binder returns the live source for a source id.
type Binder func(id string) (source.Source, bool)

// Load reads a playlist written by Save and binds each item back to its
// source. An unknown source id fails the whole load.
func Load(r io.Reader, bind Binder) (*Playlist, error) {
	var saved savedPlaylist
	if err := json.NewDecoder(r).Decode(&saved); err != nil {
		return nil, fmt.Errorf("decode playlist: %w", err)
	}

	p := New(saved.Name)
	for i, item := range saved.Items {
		src, ok := bind(item.Source)
		if !ok {
			return nil, fmt.Errorf("item %d (%q): unknown source %q", i, item.Title, item.Source)
		}
		p.items = append(p.items, source.NewResult(item.Title, item.Link, src))
	}

	return p, nil
}
