package playlist

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/util"
	"github.com/webify-cli/webify/where"
)

const extension = ".json"

// Path returns the file a playlist named name is stored in.
func Path(name string) string {
	return filepath.Join(where.Playlists(), util.SanitizeFilename(name)+extension)
}

// SaveFile stores p under its name in the playlists directory.
func (p *Playlist) SaveFile() error {
	file, err := filesystem.API().OpenFile(Path(p.Name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.ModePerm)
	if err != nil {
		return err
	}
	defer util.Ignore(file.Close)

	return p.Save(file)
}

// LoadFile reads the playlist stored under name.
func LoadFile(name string, bind Binder) (*Playlist, error) {
	file, err := filesystem.API().Open(Path(name))
	if err != nil {
		return nil, err
	}
	defer util.Ignore(file.Close)

	return Load(file, bind)
}

// List returns the names of saved playlists, sorted.
func List() ([]string, error) {
	entries, err := filesystem.API().ReadDir(where.Playlists())
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}
		names = append(names, util.FileStem(entry.Name()))
	}

	sort.Strings(names)
	return names, nil
}

// Delete removes the playlist stored under name.
func Delete(name string) error {
	return util.Delete(Path(name))
}
