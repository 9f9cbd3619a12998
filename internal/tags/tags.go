// Package tags reads the metadata the playlist shows for a music file:
// title, artist, album, track number and stream duration.
package tags

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// File extensions with a stream reader.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// id3Magic starts an ID3v2 header.
const id3Magic = "ID3"

// Info is what a music file says about itself. Fields the file does not
// carry are left zero.
type Info struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Size        int64
	Stream
}

// Stream holds audio stream properties.
type Stream struct {
	Duration   time.Duration
	Format     string // MP3, FLAC, OPUS, AAC, ALAC
	SampleRate int
}

// Read opens path and collects its tags and stream properties.
// Only failing to open the file is an error; unreadable tags or an
// undecodable stream leave the corresponding fields empty.
func Read(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info := &Info{Path: path}
	if st, err := f.Stat(); err == nil {
		info.Size = st.Size()
	}

	readMetadata(f, info)

	if !HasStreamReader(path) {
		return info, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err == nil {
		if s, err := readStream(f, path); err == nil {
			info.Stream = *s
		}
	}
	return info, nil
}

func readMetadata(r io.ReadSeeker, info *Info) {
	m, err := tag.ReadFrom(r)
	if err != nil {
		return
	}
	info.Title = strings.TrimSpace(m.Title())
	info.Artist = strings.TrimSpace(m.Artist())
	if info.Artist == "" {
		info.Artist = strings.TrimSpace(m.AlbumArtist())
	}
	info.Album = strings.TrimSpace(m.Album())
	info.TrackNumber, _ = m.Track()
}

// HasStreamReader reports whether ReadStream understands path's format.
func HasStreamReader(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtM4A, ExtMP4:
		return true
	}
	return false
}
