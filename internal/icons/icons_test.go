//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.want {
				t.Errorf("Init(%q) selected %+v", tt.style, current)
			}
		})
	}

	Init("none")
}

func TestValid(t *testing.T) {
	for _, s := range []string{"", "none", "nerd", "unicode"} {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false", s)
		}
	}
	for _, s := range []string{"NERD", "emoji"} {
		if Valid(s) {
			t.Errorf("Valid(%q) = true", s)
		}
	}
}

func TestFormatPlaylist(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"none", "Music"},
		{"nerd", "󰲸 Music"},
		{"unicode", "📋 Music"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatPlaylist("Music"); got != tt.want {
				t.Errorf("FormatPlaylist() = %q, want %q", got, tt.want)
			}
		})
	}

	Init("none")
}

func TestFormatAudio(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"none", "Song"},
		{"nerd", "\uf001 Song"},
		{"unicode", "🎵 Song"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatAudio("Song"); got != tt.want {
				t.Errorf("FormatAudio() = %q, want %q", got, tt.want)
			}
		})
	}

	Init("none")
}

func TestPlaying_NoneKeepsMarker(t *testing.T) {
	Init("none")
	if got := Playing(); got != "▶ " {
		t.Errorf("Playing() = %q, want %q", got, "▶ ")
	}
}

func TestShare(t *testing.T) {
	Init("nerd")
	defer Init("none")

	tests := []struct {
		target string
		want   string
	}{
		{"facebook", "\uf09a "},
		{"twitter", "\uf099 "},
		{"email", "\uf0e0 "},
		{"link", "\uf0c1 "},
		{"unknown", ""},
	}
	for _, tt := range tests {
		if got := Share(tt.target); got != tt.want {
			t.Errorf("Share(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestShare_NoneIsEmpty(t *testing.T) {
	Init("none")
	for _, target := range []string{"facebook", "twitter", "email", "link"} {
		if got := Share(target); got != "" {
			t.Errorf("Share(%q) = %q, want empty", target, got)
		}
	}
}
