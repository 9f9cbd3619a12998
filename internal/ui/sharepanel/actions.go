package sharepanel

import "github.com/llehouerou/ripple/internal/ui/action"

// Source identifies the share panel in action messages.
const Source = "sharepanel"

// Shared is sent once a share target has been opened or copied.
// Err is set when the link could not be built or handed off.
type Shared struct {
	Target Target
	URL    string
	Err    error
}

// ActionType implements action.Action.
func (a Shared) ActionType() string { return "shared" }

// ActionMsg creates an action.Msg for a share panel action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
