package player

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/aggregator"
	"github.com/webify-cli/webify/history"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/log"
	"github.com/webify-cli/webify/playlist"
	"github.com/webify-cli/webify/source"
)

// State of the play loop.
type State int

const (
	Stopped State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Failure is a queued item that could not be played.
type Failure struct {
	Item *source.Result
	Err  error
}

// Report summarizes one pass over the queue.
type Report struct {
	Played []*source.Result
	Failed []Failure
}

// Player ties searching, the queue and a playback backend together.
type Player struct {
	search  *aggregator.Aggregator
	queue   *playlist.Playlist
	backend Backend

	mu    sync.Mutex
	state State
	track int
}

// New returns a stopped player with an empty queue.
func New(search *aggregator.Aggregator, backend Backend) *Player {
	return &Player{
		search:  search,
		queue:   playlist.New("queue"),
		backend: backend,
		track:   -1,
	}
}

// Search runs text on every source, or returns cached results for empty text.
func (p *Player) Search(ctx context.Context, text string) ([]*source.Result, error) {
	return p.search.Search(ctx, text)
}

// ChangePage moves the current search by incr pages.
func (p *Player) ChangePage(ctx context.Context, incr int) ([]*source.Result, error) {
	return p.search.ChangePage(ctx, incr)
}

// Results returns the results currently on display.
func (p *Player) Results() []*source.Result {
	return p.search.Results()
}

// Aggregator returns the underlying aggregator.
func (p *Player) Aggregator() *aggregator.Aggregator {
	return p.search
}

// Backend returns the playback backend.
func (p *Player) Backend() Backend {
	return p.backend
}

// Playlist returns the play queue.
func (p *Player) Playlist() *playlist.Playlist {
	return p.queue
}

// Queue adds item to the play queue, at the front when front is set.
func (p *Player) Queue(item *source.Result, front bool) {
	p.queue.Add(item, front)
}

// Dequeue removes the queued item at idx.
func (p *Player) Dequeue(idx int) error {
	return p.queue.Remove(idx)
}

// QueuePlaylist replaces the queue with the items of pl and plays it when autoplay is set.
func (p *Player) QueuePlaylist(ctx context.Context, pl *playlist.Playlist, autoplay bool) Report {
	p.queue.Clear()
	for _, item := range pl.Items() {
		p.queue.Add(item, false)
	}

	if !autoplay {
		return Report{}
	}
	return p.Play(ctx)
}

// State returns the state of the play loop.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Track returns the index of the queued item being played.
func (p *Player) Track() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.track, p.state == Playing
}

// Play resolves and plays every queued item in order. Items that fail to
// resolve or play are reported and skipped. A cancelled ctx stops the loop.
func (p *Player) Play(ctx context.Context) Report {
	var report Report

	p.setState(Playing, 0)
	defer p.setState(Stopped, -1)

	for i, item := range p.queue.Items() {
		if ctx.Err() != nil {
			break
		}

		p.setState(Playing, i)
		entry := log.Fields(logrus.Fields{"title": item.Title(), "track": i})

		streamURL, err := item.Resolve(ctx)
		if err != nil {
			entry.Errorf("resolve: %s", err)
			report.Failed = append(report.Failed, Failure{Item: item, Err: err})
			continue
		}

		if err := p.backend.Play(ctx, streamURL, item.Title()); err != nil {
			entry.Errorf("play: %s", err)
			report.Failed = append(report.Failed, Failure{Item: item, Err: err})
			continue
		}

		report.Played = append(report.Played, item)

		if viper.GetBool(key.HistorySaveOnPlay) {
			if err := history.Save(item, streamURL); err != nil {
				entry.Warnf("history: %s", err)
			}
		}
	}

	return report
}

func (p *Player) setState(state State, track int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = state
	p.track = track
}
