package playlist

import "time"

// Track represents a single track in a playlist.
type Track struct {
	Path        string // file path
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Duration    time.Duration
	Size        int64 // file size in bytes
}

// Label returns "Artist - Title", or just the title when the artist is unknown.
func (t Track) Label() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// Playlist holds an ordered collection of tracks and the current position.
type Playlist struct {
	name         string
	tracks       []Track
	currentIndex int // -1 if nothing selected
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist(name string) *Playlist {
	return &Playlist{
		name:         name,
		tracks:       make([]Track, 0),
		currentIndex: -1,
	}
}

// Name identifies the playlist (the folder it was loaded from).
func (p *Playlist) Name() string {
	return p.name
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Clear removes all tracks and resets the position.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
	p.currentIndex = -1
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// TotalSize returns the combined file size of all tracks.
func (p *Playlist) TotalSize() int64 {
	var n int64
	for i := range p.tracks {
		n += p.tracks[i].Size
	}
	return n
}

// TotalDuration returns the combined duration of all tracks.
func (p *Playlist) TotalDuration() time.Duration {
	var d time.Duration
	for i := range p.tracks {
		d += p.tracks[i].Duration
	}
	return d
}

// Current returns the current track, or nil if none.
func (p *Playlist) Current() *Track {
	return p.Track(p.currentIndex)
}

// CurrentIndex returns the index of the current track (-1 if none).
func (p *Playlist) CurrentIndex() int {
	return p.currentIndex
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (p *Playlist) JumpTo(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	p.currentIndex = index
	return p.Current()
}

// Next advances to the next track and returns it.
// Returns nil if there is no next track.
func (p *Playlist) Next() *Track {
	if p.currentIndex >= len(p.tracks)-1 {
		return nil
	}
	p.currentIndex++
	return p.Current()
}

// Prev moves to the previous track and returns it.
// Returns nil if already at the first track.
func (p *Playlist) Prev() *Track {
	if p.currentIndex <= 0 {
		return nil
	}
	p.currentIndex--
	return p.Current()
}
