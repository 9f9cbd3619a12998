// Package icons holds the glyphs drawn next to playlist and share labels.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Playlist string
	Audio    string
	Playing  string
	Facebook string
	Twitter  string
	Email    string
	Link     string
}

var (
	nerdIcons = Icons{
		Playlist: "󰲸 ",      // nf-md-playlist_music
		Audio:    "\uf001 ", // nf-fa-music
		Playing:  "\uf04b ", // nf-fa-play
		Facebook: "\uf09a ", // nf-fa-facebook
		Twitter:  "\uf099 ", // nf-fa-twitter
		Email:    "\uf0e0 ", // nf-fa-envelope
		Link:     "\uf0c1 ", // nf-fa-link
	}

	unicodeIcons = Icons{
		Playlist: "📋 ",
		Audio:    "🎵 ",
		Playing:  "▶ ",
		Facebook: "📘 ",
		Twitter:  "🐦 ",
		Email:    "✉ ",
		Link:     "🔗 ",
	}

	noneIcons = Icons{
		Playing: "▶ ",
	}

	current = noneIcons
)

// Init selects the icon set. Unknown styles fall back to none.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Valid reports whether style names a known icon set. Empty means none.
func Valid(style string) bool {
	switch Style(style) {
	case "", StyleNerd, StyleUnicode, StyleNone:
		return true
	}
	return false
}

// Playing returns the marker for the current track.
func Playing() string {
	return current.Playing
}

// FormatAudio prefixes a track title.
func FormatAudio(name string) string {
	return current.Audio + name
}

// FormatPlaylist prefixes a playlist name.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// Share returns the prefix for a share target by its lowercase name.
func Share(target string) string {
	switch target {
	case "facebook":
		return current.Facebook
	case "twitter":
		return current.Twitter
	case "email":
		return current.Email
	case "link":
		return current.Link
	}
	return ""
}
