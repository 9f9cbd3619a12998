// Package event implements synchronous, typed notifications for UI components.
//
// Handlers run on the bubbletea update loop in subscription order. Each
// subscription is a disposable handle; components release them on teardown so
// no handler outlives the component it observes.
package event

import tea "github.com/charmbracelet/bubbletea"

// Handler reacts to a notification and may return a command.
type Handler[T any] func(T) tea.Cmd

// Subscription is a handle to a registered handler.
type Subscription interface {
	Unsubscribe()
}

// Dispatcher fans a notification out to its subscribers.
// The zero value is ready to use.
type Dispatcher[T any] struct {
	nextID   int
	handlers []entry[T]
}

type entry[T any] struct {
	id      int
	handler Handler[T]
}

// Subscribe registers h and returns the handle that removes it.
func (d *Dispatcher[T]) Subscribe(h Handler[T]) Subscription {
	d.nextID++
	id := d.nextID
	d.handlers = append(d.handlers, entry[T]{id: id, handler: h})
	return &subscription{release: func() { d.remove(id) }}
}

// Dispatch invokes every handler with v and batches their commands.
// Handlers added or removed during dispatch take effect on the next one.
func (d *Dispatcher[T]) Dispatch(v T) tea.Cmd {
	if len(d.handlers) == 0 {
		return nil
	}
	snapshot := make([]entry[T], len(d.handlers))
	copy(snapshot, d.handlers)

	var cmds []tea.Cmd
	for _, e := range snapshot {
		if !d.has(e.id) {
			continue
		}
		if cmd := e.handler(v); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Len returns the number of live subscriptions.
func (d *Dispatcher[T]) Len() int {
	return len(d.handlers)
}

// Clear drops every subscription.
func (d *Dispatcher[T]) Clear() {
	d.handlers = nil
}

func (d *Dispatcher[T]) has(id int) bool {
	for _, e := range d.handlers {
		if e.id == id {
			return true
		}
	}
	return false
}

func (d *Dispatcher[T]) remove(id int) {
	for i, e := range d.handlers {
		if e.id == id {
			d.handlers = append(d.handlers[:i:i], d.handlers[i+1:]...)
			return
		}
	}
}

type subscription struct {
	release func()
}

func (s *subscription) Unsubscribe() {
	if s.release == nil {
		return
	}
	s.release()
	s.release = nil
}

// Group collects subscriptions so they can be released together.
type Group struct {
	subs []Subscription
}

// Add records subscriptions in the group.
func (g *Group) Add(subs ...Subscription) {
	g.subs = append(g.subs, subs...)
}

// Len returns the number of subscriptions held.
func (g *Group) Len() int {
	return len(g.subs)
}

// Unsubscribe releases every subscription in the group and empties it.
func (g *Group) Unsubscribe() {
	for _, s := range g.subs {
		s.Unsubscribe()
	}
	g.subs = nil
}
