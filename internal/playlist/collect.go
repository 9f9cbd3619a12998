package playlist

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/ripple/internal/tags"
)

var musicExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".opus": true,
	".m4a":  true,
	".mp4":  true,
	".wav":  true,
}

// IsMusicFile reports whether path has a known audio extension.
func IsMusicFile(path string) bool {
	return musicExtensions[strings.ToLower(filepath.Ext(path))]
}

// FromPath creates a playlist track from a file path by reading its metadata.
// Files without readable tags fall back to the file name as title.
func FromPath(path string) Track {
	t := Track{
		Path:  path,
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	info, err := tags.Read(path)
	if err != nil {
		return t
	}
	if info.Title != "" {
		t.Title = info.Title
	}
	t.Artist = info.Artist
	t.Album = info.Album
	t.TrackNumber = info.TrackNumber
	t.Duration = info.Duration
	t.Size = info.Size
	return t
}

// CollectFromPaths expands each path into tracks. Directories are walked
// recursively and their music files sorted by path; plain files are added if
// they are music files.
func CollectFromPaths(paths ...string) ([]Track, error) {
	var tracks []Track
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if IsMusicFile(root) {
				tracks = append(tracks, FromPath(root))
			}
			continue
		}

		var files []string
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// Skip directories/files with errors, continue walking
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if !d.IsDir() && IsMusicFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}

		slices.Sort(files)
		tracks = append(tracks, readAll(files)...)
	}
	return tracks, nil
}

// readParallelism bounds concurrent tag reads while loading a folder.
const readParallelism = 8

// readAll reads the tracks for files in parallel, keeping their order.
func readAll(files []string) []Track {
	out := make([]Track, len(files))
	var g errgroup.Group
	g.SetLimit(readParallelism)
	for i, path := range files {
		g.Go(func() error {
			out[i] = FromPath(path)
			return nil
		})
	}
	_ = g.Wait() // FromPath never fails
	return out
}

// Load builds a playlist named after dir from the music files below it.
func Load(dir string) (*Playlist, error) {
	tracks, err := CollectFromPaths(dir)
	if err != nil {
		return nil, err
	}
	p := NewPlaylist(dir)
	p.Add(tracks...)
	return p, nil
}

// FormatDuration formats a duration as MM:SS, or H:MM:SS past an hour.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
