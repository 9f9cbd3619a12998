// Package countdown provides a cancellable, restartable single-shot timer
// that fires through the bubbletea update loop.
package countdown

import (
	"errors"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Disabled is the delay sentinel that turns a timer into a permanent no-op.
const Disabled time.Duration = -time.Millisecond

// ErrInvalidDelay is returned for negative delays other than Disabled.
var ErrInvalidDelay = errors.New("countdown: delay must be >= 0 or Disabled")

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// FiredMsg is delivered when an armed timer's delay elapses.
// Seq identifies the arming; a cleared or re-armed timer ignores older fires.
type FiredMsg struct {
	ID  int
	Seq int
}

// Timer schedules a callback after a fixed delay.
// All methods must be called from the update loop.
type Timer struct {
	id       int
	seq      int
	delay    time.Duration
	callback func() tea.Cmd
	sched    Scheduler
	pending  bool
	stopped  bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithScheduler replaces the default tea.Tick scheduler.
func WithScheduler(s Scheduler) Option {
	return func(t *Timer) {
		if s != nil {
			t.sched = s
		}
	}
}

// New creates a timer running callback once delay has elapsed after Start.
func New(delay time.Duration, callback func() tea.Cmd, opts ...Option) (*Timer, error) {
	if delay < 0 && delay != Disabled {
		return nil, ErrInvalidDelay
	}
	t := &Timer{
		id:       nextID(),
		delay:    delay,
		callback: callback,
		sched:    TickScheduler{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// ID returns the identifier carried by this timer's FiredMsg.
func (t *Timer) ID() int {
	return t.id
}

// Delay returns the configured delay.
func (t *Timer) Delay() time.Duration {
	return t.delay
}

// Pending reports whether a fire is scheduled.
func (t *Timer) Pending() bool {
	return t.pending
}

// Start arms the timer. Starting a pending timer does not restart the clock.
func (t *Timer) Start() tea.Cmd {
	if t.pending || t.stopped || t.delay == Disabled {
		return nil
	}
	t.seq++
	t.pending = true
	return t.sched.After(t.delay, FiredMsg{ID: t.id, Seq: t.seq})
}

// Clear cancels the pending fire, if any.
func (t *Timer) Clear() {
	if !t.pending {
		return
	}
	t.pending = false
	t.seq++
}

// Reset re-arms the full delay from now.
func (t *Timer) Reset() tea.Cmd {
	t.Clear()
	return t.Start()
}

// Stop cancels any pending fire and disables the timer for good.
func (t *Timer) Stop() {
	t.Clear()
	t.stopped = true
}

// Update runs the callback when msg is the fire of the current arming.
func (t *Timer) Update(msg tea.Msg) tea.Cmd {
	fired, ok := msg.(FiredMsg)
	if !ok || fired.ID != t.id {
		return nil
	}
	if !t.pending || fired.Seq != t.seq {
		return nil
	}
	t.pending = false
	if t.callback == nil {
		return nil
	}
	return t.callback()
}
