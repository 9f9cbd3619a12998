package sharepanel

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/llehouerou/ripple/internal/playlist"
)

// ErrNoTrack is reported when sharing with nothing selected.
var ErrNoTrack = errors.New("no track to share")

// Target is a share destination.
type Target int

const (
	Facebook Target = iota
	Twitter
	Email
	Link
)

// Targets lists the destinations in button order.
var Targets = []Target{Facebook, Twitter, Email, Link}

func (t Target) String() string {
	switch t {
	case Facebook:
		return "facebook"
	case Twitter:
		return "twitter"
	case Email:
		return "email"
	case Link:
		return "link"
	default:
		return "unknown"
	}
}

// Label is the button caption.
func (t Target) Label() string {
	switch t {
	case Facebook:
		return "Facebook"
	case Twitter:
		return "Twitter"
	case Email:
		return "Email"
	default:
		return "Link"
	}
}

// ParseTarget returns the target named by String.
func ParseTarget(name string) (Target, bool) {
	for _, t := range Targets {
		if t.String() == name {
			return t, true
		}
	}
	return Facebook, false
}

// TrackURL returns the address shared for a track. With a base URL the track
// path is taken relative to root and escaped segment by segment; without one
// the result is a file:// URL.
func TrackURL(track playlist.Track, root, baseURL string) (string, error) {
	if baseURL == "" {
		abs, err := filepath.Abs(track.Path)
		if err != nil {
			return "", err
		}
		return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
	}

	rel := track.Path
	if root != "" {
		r, err := filepath.Rel(root, track.Path)
		if err != nil {
			return "", err
		}
		rel = r
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.Join(segments, "/"), nil
}

// ShareURL builds what the target opens: a web intent, a mailto link, or the
// link itself.
func ShareURL(t Target, title, link string) string {
	switch t {
	case Facebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(link)
	case Twitter:
		return "https://twitter.com/intent/tweet?" + url.Values{
			"text": {title},
			"url":  {link},
		}.Encode()
	case Email:
		return "mailto:?subject=" + mailEscape(title) + "&body=" + mailEscape(link)
	default:
		return link
	}
}

// mailEscape escapes for mailto headers, where mail clients do not read "+"
// as a space.
func mailEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
