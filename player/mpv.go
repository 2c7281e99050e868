package player

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/log"
)

// MPV runs one mpv process per stream in the foreground of the terminal.
type MPV struct {
	Binary string

	mu    sync.Mutex
	video bool
}

// NewMPV returns an mpv backend with video enabled according to player.video.
func NewMPV() *MPV {
	return &MPV{
		Binary: "mpv",
		video:  viper.GetBool(key.PlayerVideo),
	}
}

// ToggleVideo flips video output for subsequent plays and returns the new setting.
func (m *MPV) ToggleVideo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.video = !m.video
	return m.video
}

// Video reports whether video output is enabled.
func (m *MPV) Video() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.video
}

// Args builds the mpv command line for a stream.
func (m *MPV) Args(rawURL, title string) ([]string, error) {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{
		"--really-quiet",
		"--no-lirc",
		"--no-cache",
	}

	if !m.Video() {
		args = append(args, "--no-video")
	}

	if t := sanitizeTitle(title); t != "" {
		args = append(args, "--force-media-title="+t)
	}

	// end of options, the target can never be read as a flag
	return append(args, "--", target), nil
}

// Play runs mpv and waits for it to exit. Cancelling ctx terminates the process.
func (m *MPV) Play(ctx context.Context, rawURL, title string) error {
	args, err := m.Args(rawURL, title)
	if err != nil {
		return err
	}

	path, err := exec.LookPath(m.Binary)
	if err != nil {
		return fmt.Errorf("%s not found: %w", m.Binary, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Cancel = func() error {
		return terminate(cmd)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Fields(logrus.Fields{"args": args}).Debug("starting mpv")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mpv: %w", err)
	}
	return nil
}

// sanitizeMediaTarget accepts http(s) URLs and local paths.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-'")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
