// Package version checks for newer releases of the application.
package version

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/metafates/gache"
	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/network"
	"github.com/webify-cli/webify/where"
)

// ReleasesURL is the endpoint describing the latest release.
var ReleasesURL = "https://api.github.com/repos/webify-cli/webify/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version, cached for two days.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	transport := network.New()
	transport.Retries = 0

	body, err := transport.Fetch(ctx, ReleasesURL)
	if err != nil {
		return "", err
	}

	tag, err := jsonparser.GetString([]byte(body), "tag_name")
	if err != nil {
		return "", err
	}

	if tag == "" {
		return "", errors.New("empty tag name")
	}

	version := strings.TrimPrefix(tag, "v")
	_ = versionCacher.Set(version)
	return version, nil
}
