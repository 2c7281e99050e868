package pleer

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

type track struct {
	singer string
	song   string
	link   string
}

func (t track) title() string {
	return t.singer + " | " + t.song
}

// tagStream pulls start tags out of an HTML document one at a time.
type tagStream struct {
	z   *html.Tokenizer
	err error
}

func newTagStream(r io.Reader) *tagStream {
	return &tagStream{z: html.NewTokenizer(r)}
}

// Next returns the next start tag name and its attributes.
// It returns false at the end of the document or on a tokenizer error.
func (t *tagStream) Next() (string, map[string]string, bool) {
	for {
		switch t.z.Next() {
		case html.ErrorToken:
			if err := t.z.Err(); !errors.Is(err, io.EOF) {
				t.err = err
			}
			return "", nil, false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := t.z.TagName()
			attrs := make(map[string]string)
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = t.z.TagAttr()
				attrs[string(key)] = string(val)
			}
			return string(name), attrs, true
		}
	}
}

func (t *tagStream) Err() error {
	return t.err
}

// scanTracks starts from an empty accumulator on every call.
func scanTracks(raw string) ([]track, error) {
	var (
		stream = newTagStream(strings.NewReader(raw))
		tracks []track
	)

	for {
		name, attrs, ok := stream.Next()
		if !ok {
			break
		}

		if name != "li" {
			continue
		}
		if _, ok := attrs["duration"]; !ok {
			continue
		}

		link, ok := attrs["link"]
		if !ok || link == "" {
			continue
		}

		tracks = append(tracks, track{
			singer: attrs["singer"],
			song:   attrs["song"],
			link:   link,
		})
	}

	return tracks, stream.Err()
}
