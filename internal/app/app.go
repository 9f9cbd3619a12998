// Package app contains the root bubbletea model: a now-playing screen with
// the playlist menu and share panel layered over it.
package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/countdown"
	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/state"
	"github.com/llehouerou/ripple/internal/ui/autohide"
	"github.com/llehouerou/ripple/internal/ui/helpbindings"
	"github.com/llehouerou/ripple/internal/ui/playlistmenu"
	"github.com/llehouerou/ripple/internal/ui/sharepanel"
)

// Model is the root application model containing all state.
type Model struct {
	Playlist  *playlist.Playlist
	Menu      *playlistmenu.Model
	Share     *sharepanel.Model
	Help      helpbindings.Model
	ShowHelp  bool
	StateMgr  state.Interface
	Keys      *keymap.Resolver
	ErrorMsg  string
	Notice    *Notification
	noticeSeq int64
	notifier  notify.Notifier
	desktopID uint32
	log       *slog.Logger
	Width     int
	Height    int
}

type options struct {
	scheduler countdown.Scheduler
	logger    *slog.Logger
	notifier  notify.Notifier
}

// Option configures New.
type Option func(*options)

// WithScheduler sets the scheduler driving the panels' auto-hide countdowns.
func WithScheduler(s countdown.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithNotifier sets where desktop notifications for shares are sent.
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates the application model for list. The menu selection and last
// share target saved in stateMgr are restored when they still apply.
func New(cfg *config.Config, list *playlist.Playlist, stateMgr state.Interface, opts ...Option) (Model, error) {
	o := options{
		scheduler: countdown.TickScheduler{},
		logger:    slog.New(slog.DiscardHandler),
		notifier:  notify.Discard{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	menu, err := playlistmenu.New(list, cfg.PlaylistMenu.Layer(),
		autohide.WithScheduler(o.scheduler),
		autohide.WithLogger(o.logger.With("component", playlistmenu.Source)),
	)
	if err != nil {
		return Model{}, fmt.Errorf("%s %s: %w", errmsg.OpPanelCreate, playlistmenu.Source, err)
	}

	share, err := sharepanel.New(cfg.SharePanel.Layer(), cfg.SharePanel.BaseURL,
		autohide.WithScheduler(o.scheduler),
		autohide.WithLogger(o.logger.With("component", sharepanel.Source)),
	)
	if err != nil {
		menu.Destroy()
		return Model{}, fmt.Errorf("%s %s: %w", errmsg.OpPanelCreate, sharepanel.Source, err)
	}

	help := helpbindings.New()
	help.AddComponent(playlistmenu.Source, playlistmenu.Help())
	help.AddComponent(sharepanel.Source, sharepanel.Help())
	help.SetContexts([]string{"global", "track", playlistmenu.Source, sharepanel.Source})

	m := Model{
		Playlist: list,
		Menu:     menu,
		Share:    share,
		Help:     help,
		StateMgr: stateMgr,
		Keys:     keymap.NewResolver(keymap.Bindings),
		notifier: o.notifier,
		log:      o.logger,
	}
	m.restoreSelection()
	m.restoreShareTarget()
	m.setShareTrack()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Menu.Init(), m.Share.Init())
}

// Destroy releases the panels' subscriptions and auto-hide countdowns.
func (m Model) Destroy() {
	m.Menu.Destroy()
	m.Share.Destroy()
}
