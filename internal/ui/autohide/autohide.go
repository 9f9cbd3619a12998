// Package autohide hides a panel after a period without pointer activity.
//
// A Controller binds a countdown to a panel's notifications:
//
//	shown          -> start countdown         (Armed)
//	pointer enter  -> clear countdown         (Suppressed)
//	pointer leave  -> restart countdown       (Armed)
//	countdown fire -> hide the panel          (Idle, via hidden)
//	hidden         -> clear countdown         (Idle)
//
// Every shown restarts the full delay, whatever the pointer is doing; hover
// suppression only begins again on the next pointer enter.
package autohide

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/countdown"
	"github.com/llehouerou/ripple/internal/ui/event"
	"github.com/llehouerou/ripple/internal/ui/panel"
)

// State is the controller's view of the countdown.
type State int

const (
	Idle State = iota
	Armed
	Suppressed
)

func (s State) String() string {
	switch s {
	case Armed:
		return "armed"
	case Suppressed:
		return "suppressed"
	default:
		return "idle"
	}
}

// Target is the component a Controller hides.
type Target interface {
	Hide() tea.Cmd
	OnShow(event.Handler[panel.Shown]) event.Subscription
	OnHide(event.Handler[panel.Hidden]) event.Subscription
	OnPointerEnter(event.Handler[panel.PointerEntered]) event.Subscription
	OnPointerLeave(event.Handler[panel.PointerLeft]) event.Subscription
}

// Controller auto-hides one target. A controller created with the disabled
// delay is inert: it holds no countdown and no subscriptions.
type Controller struct {
	target Target
	timer  *countdown.Timer
	subs   event.Group
	state  State
	log    *slog.Logger
}

type options struct {
	scheduler countdown.Scheduler
	logger    *slog.Logger
}

// Option configures a Controller.
type Option func(*options)

// WithScheduler sets the scheduler used by the countdown.
func WithScheduler(s countdown.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithLogger sets the logger receiving state transitions at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Attach creates a controller for target and subscribes it to the target's
// notifications. hideDelayMs is the idle time in milliseconds; -1 disables
// auto-hiding and anything lower is rejected.
func Attach(target Target, hideDelayMs int, opts ...Option) (*Controller, error) {
	if hideDelayMs < panel.HideDelayDisabled {
		return nil, panel.ErrInvalidHideDelay
	}

	o := options{
		scheduler: countdown.TickScheduler{},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller{target: target, log: o.logger}
	if hideDelayMs == panel.HideDelayDisabled {
		return c, nil
	}

	delay := time.Duration(hideDelayMs) * time.Millisecond
	timer, err := countdown.New(delay, c.fire, countdown.WithScheduler(o.scheduler))
	if err != nil {
		return nil, err
	}
	c.timer = timer
	c.log = c.log.With("timer", timer.ID(), "delay", delay)

	c.subs.Add(
		target.OnShow(c.onShow),
		target.OnPointerEnter(c.onPointerEnter),
		target.OnPointerLeave(c.onPointerLeave),
		target.OnHide(c.onHide),
	)
	return c, nil
}

// Enabled reports whether the controller auto-hides at all.
func (c *Controller) Enabled() bool {
	return c.timer != nil
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Update delivers countdown fires. Other messages are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	if c.timer == nil {
		return nil
	}
	return c.timer.Update(msg)
}

// Touch restarts the countdown after non-pointer activity such as a key
// press. It has no effect unless the countdown is running.
func (c *Controller) Touch() tea.Cmd {
	if c.timer == nil || c.state != Armed {
		return nil
	}
	return c.timer.Reset()
}

// Detach releases the subscriptions and stops the countdown. A fire already
// in flight is discarded.
func (c *Controller) Detach() {
	c.subs.Unsubscribe()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.transition(Idle, "detach")
}

func (c *Controller) onShow(panel.Shown) tea.Cmd {
	c.transition(Armed, "shown")
	// Start alone is a no-op while pending; a repeated shown still restarts.
	return c.timer.Reset()
}

func (c *Controller) onPointerEnter(panel.PointerEntered) tea.Cmd {
	c.timer.Clear()
	c.transition(Suppressed, "pointer entered")
	return nil
}

func (c *Controller) onPointerLeave(panel.PointerLeft) tea.Cmd {
	c.transition(Armed, "pointer left")
	return c.timer.Reset()
}

func (c *Controller) onHide(panel.Hidden) tea.Cmd {
	c.timer.Clear()
	c.transition(Idle, "hidden")
	return nil
}

func (c *Controller) fire() tea.Cmd {
	c.log.Debug("auto-hide countdown elapsed")
	return c.target.Hide()
}

func (c *Controller) transition(to State, cause string) {
	if c.state == to {
		return
	}
	c.log.Debug("auto-hide transition", "from", c.state, "to", to, "cause", cause)
	c.state = to
}
