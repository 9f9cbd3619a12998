// Package panel provides the show/hide-able, hoverable overlay that menus and
// panels are built on.
//
// A Panel publishes four notifications: shown, hidden, pointer entered and
// pointer left. Pointer notifications are derived from mouse messages and are
// only produced while the panel is visible and has been laid out on screen.
package panel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/event"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// Shown is published every time Show is called.
type Shown struct{}

// Hidden is published when the panel goes from visible to hidden.
type Hidden struct{}

// PointerEntered is published when the pointer moves onto the panel.
type PointerEntered struct{ X, Y int }

// PointerLeft is published when the pointer moves off the panel.
type PointerLeft struct{ X, Y int }

// Panel is a visibility-capable overlay component.
type Panel struct {
	ui.Base
	cfg     Config
	visible bool
	hovered bool
	bounds  Rect

	shown   event.Dispatcher[Shown]
	hidden  event.Dispatcher[Hidden]
	entered event.Dispatcher[PointerEntered]
	left    event.Dispatcher[PointerLeft]
}

// New creates a panel from a merged configuration.
func New(cfg Config) (*Panel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Panel{
		cfg:     cfg,
		visible: !cfg.StartsHidden(),
	}, nil
}

// Config returns the panel configuration.
func (p *Panel) Config() Config {
	return p.cfg
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Hovered reports whether the pointer is over the panel.
func (p *Panel) Hovered() bool {
	return p.hovered
}

// Show makes the panel visible and publishes Shown, even if it already was.
func (p *Panel) Show() tea.Cmd {
	p.visible = true
	return p.shown.Dispatch(Shown{})
}

// Hide hides the panel. Hiding a hidden panel publishes nothing.
func (p *Panel) Hide() tea.Cmd {
	if !p.visible {
		return nil
	}
	p.visible = false
	// The surface is gone; the next enter comes from fresh motion.
	p.hovered = false
	return p.hidden.Dispatch(Hidden{})
}

// Toggle shows a hidden panel or hides a visible one.
func (p *Panel) Toggle() tea.Cmd {
	if p.visible {
		return p.Hide()
	}
	return p.Show()
}

// OnShow subscribes to Shown.
func (p *Panel) OnShow(h event.Handler[Shown]) event.Subscription {
	return p.shown.Subscribe(h)
}

// OnHide subscribes to Hidden.
func (p *Panel) OnHide(h event.Handler[Hidden]) event.Subscription {
	return p.hidden.Subscribe(h)
}

// OnPointerEnter subscribes to PointerEntered.
func (p *Panel) OnPointerEnter(h event.Handler[PointerEntered]) event.Subscription {
	return p.entered.Subscribe(h)
}

// OnPointerLeave subscribes to PointerLeft.
func (p *Panel) OnPointerLeave(h event.Handler[PointerLeft]) event.Subscription {
	return p.left.Subscribe(h)
}

// Subscribers returns the number of live subscriptions across all notifications.
func (p *Panel) Subscribers() int {
	return p.shown.Len() + p.hidden.Len() + p.entered.Len() + p.left.Len()
}

// Destroy releases every subscription. Nothing is published to former
// subscribers afterwards.
func (p *Panel) Destroy() {
	p.shown.Clear()
	p.hidden.Clear()
	p.entered.Clear()
	p.left.Clear()
	p.hovered = false
}

// Layout places a w×h panel on the screen and records its bounds.
func (p *Panel) Layout(screenW, screenH, w, h int, anchor Anchor) {
	p.SetBounds(Place(screenW, screenH, w, h, ui.ScreenMargin, anchor))
}

// SetBounds records where the panel is drawn.
func (p *Panel) SetBounds(r Rect) {
	p.bounds = r
	p.SetSize(r.Width, r.Height)
}

// Bounds returns where the panel was last laid out.
func (p *Panel) Bounds() Rect {
	return p.bounds
}

// Realized reports whether the panel currently has an on-screen surface.
func (p *Panel) Realized() bool {
	return p.visible && !p.bounds.Empty()
}

// Contains reports whether the screen cell is on the visible panel.
func (p *Panel) Contains(x, y int) bool {
	return p.Realized() && p.bounds.Contains(x, y)
}

// Local converts screen coordinates to coordinates relative to the panel's
// content area (inside border and padding, below the header).
func (p *Panel) Local(x, y int) (col, row int) {
	col = x - p.bounds.X - ui.BorderWidth/2 - ui.PanelPadding
	row = y - p.bounds.Y - ui.BorderHeight/2 - ui.HeaderHeight
	return col, row
}

// HandleMouse tracks the pointer and publishes enter/leave transitions.
func (p *Panel) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if !p.Realized() {
		return nil
	}
	inside := p.bounds.Contains(msg.X, msg.Y)
	switch {
	case inside && !p.hovered:
		p.hovered = true
		return p.entered.Dispatch(PointerEntered{X: msg.X, Y: msg.Y})
	case !inside && p.hovered:
		p.hovered = false
		return p.left.Dispatch(PointerLeft{X: msg.X, Y: msg.Y})
	}
	return nil
}

// Frame draws body inside the panel border with the configured title.
// Body lines beyond the content area are dropped.
func (p *Panel) Frame(body string) string {
	innerW, innerH := p.InnerSize()
	if p.bounds.Empty() {
		return ""
	}

	lines := make([]string, 0, innerH+ui.HeaderHeight)
	lines = append(lines,
		styles.PanelTitle(render.Truncate(p.cfg.Title, innerW)),
		styles.T().S().Subtle.Render(render.Separator(innerW)),
	)
	for i, line := range strings.Split(body, "\n") {
		if i >= innerH {
			break
		}
		lines = append(lines, render.TruncateANSI(line, innerW))
	}

	return styles.PanelStyle(p.hovered, p.cfg.Classes).
		Width(p.bounds.Width - ui.BorderWidth).
		Height(p.bounds.Height - ui.BorderHeight).
		Render(strings.Join(lines, "\n"))
}

// Overlay draws the framed panel at its bounds, padded with transparent
// space so it can be composed over a full-screen base view.
func (p *Panel) Overlay(body string) string {
	if !p.Realized() {
		return ""
	}
	frame := p.Frame(body)
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", p.bounds.Y))
	pad := strings.Repeat(" ", p.bounds.X)
	for i, line := range strings.Split(frame, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pad)
		b.WriteString(line)
	}
	return b.String()
}
