package testutil

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FakeScheduler is a virtual clock implementing countdown.Scheduler.
// Scheduled messages are only delivered when the clock is advanced.
type FakeScheduler struct {
	now     time.Duration
	order   int
	entries []scheduledMsg
}

type scheduledMsg struct {
	at    time.Duration
	order int
	msg   tea.Msg
}

// NewFakeScheduler returns a scheduler whose clock starts at zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// After records msg for delivery at now+d. The returned command produces no
// message; delivery happens through Advance.
func (s *FakeScheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	s.order++
	s.entries = append(s.entries, scheduledMsg{at: s.now + d, order: s.order, msg: msg})
	return func() tea.Msg { return nil }
}

// Now returns the virtual time elapsed since creation.
func (s *FakeScheduler) Now() time.Duration {
	return s.now
}

// Outstanding returns how many scheduled messages have not been delivered yet.
// Cancelled timers still count: cancellation is the receiver's job.
func (s *FakeScheduler) Outstanding() int {
	return len(s.entries)
}

// AdvanceFunc moves the clock forward by d, delivering every due message in
// deadline order. Messages scheduled by deliver are honored if they fall due
// within the same window.
func (s *FakeScheduler) AdvanceFunc(d time.Duration, deliver func(tea.Msg)) {
	target := s.now + d
	for {
		next, ok := s.popDue(target)
		if !ok {
			break
		}
		s.now = next.at
		deliver(next.msg)
	}
	s.now = target
}

// Advance moves the clock forward by d and returns the messages that fell due.
func (s *FakeScheduler) Advance(d time.Duration) []tea.Msg {
	var msgs []tea.Msg
	s.AdvanceFunc(d, func(msg tea.Msg) {
		msgs = append(msgs, msg)
	})
	return msgs
}

func (s *FakeScheduler) popDue(target time.Duration) (scheduledMsg, bool) {
	if len(s.entries) == 0 {
		return scheduledMsg{}, false
	}
	sort.SliceStable(s.entries, func(i, j int) bool {
		if s.entries[i].at != s.entries[j].at {
			return s.entries[i].at < s.entries[j].at
		}
		return s.entries[i].order < s.entries[j].order
	})
	if s.entries[0].at > target {
		return scheduledMsg{}, false
	}
	next := s.entries[0]
	s.entries = s.entries[1:]
	return next, true
}
