// Package player plays queued results through an external media player.
package player

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/webify-cli/webify/key"
)

// Backend plays one stream and returns when playback ends.
type Backend interface {
	Play(ctx context.Context, url, title string) error
}

// Backends lists the names accepted by player.default.
var Backends = []string{"mpv"}

// NewBackend returns the backend named by player.default.
func NewBackend() (Backend, error) {
	switch name := viper.GetString(key.Player); name {
	case "mpv":
		return NewMPV(), nil
	default:
		return nil, fmt.Errorf("unknown player %q, available: %v", name, Backends)
	}
}
