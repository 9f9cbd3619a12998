package playlistmenu

import (
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui/action"
)

// Source identifies the playlist menu in action messages.
const Source = "playlistmenu"

// Select is sent when the user picks a track.
type Select struct {
	Index int
	Track playlist.Track
}

// ActionType implements action.Action.
func (a Select) ActionType() string { return "select" }

// ActionMsg creates an action.Msg for a playlist menu action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
