// Package where resolves the paths webify reads and writes.
// Directories are created on first use.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/webify-cli/webify/constant"
	"github.com/webify-cli/webify/filesystem"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "WEBIFY_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is $WEBIFY_CONFIG_PATH or webify under the user config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Webify))
}

// Cache holds the release check and the search terms history.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Webify))
}

// Logs holds one log file per day.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Playlists holds saved playlists, one JSON file each.
func Playlists() string {
	return ensureDir(filepath.Join(Config(), "playlists"))
}

// History is the play history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the search terms history used for suggestions.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
