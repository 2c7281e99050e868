package history

import (
	"fmt"
	"time"

	"github.com/webify-cli/webify/source"
)

// Record is one played item as kept in the history file.
type Record struct {
	SourceID  string    `json:"source_id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	StreamURL string    `json:"stream_url"`
	Plays     int       `json:"plays"`
	PlayedAt  time.Time `json:"played_at"`
}

func (r *Record) encode() string {
	return fmt.Sprintf("%s (%s)", r.Link, r.SourceID)
}

func (r *Record) String() string {
	return fmt.Sprintf("%s (%s)", r.Title, r.SourceID)
}

func newRecord(result *source.Result, streamURL string) *Record {
	record := &Record{
		Title:     result.Title(),
		Link:      result.Link(),
		StreamURL: streamURL,
		PlayedAt:  time.Now(),
	}
	if result.Source() != nil {
		record.SourceID = result.Source().ID()
	}
	return record
}
