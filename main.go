package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/llehouerou/ripple/internal/app"
	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/log"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/state"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run() error {
	if !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	icons.Init(cfg.Icons)

	logger, err := log.New(log.Options{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir})
	if err != nil {
		return err
	}
	defer logger.Close()
	mainLog := logger.Component("main")

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	stateMgr.SetLogger(logger.Component("state"))
	defer func() {
		if err := stateMgr.Close(); err != nil {
			mainLog.Error("close state", "error", err)
		}
	}()

	// Determine the folder to play: command line > config default > cwd
	folder := cfg.DefaultFolder
	if len(os.Args) > 1 {
		folder = os.Args[1]
	}
	if folder == "" {
		folder, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	list, err := playlist.Load(folder)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpPlaylistLoad, folder, err))
	}
	mainLog.Info("playlist loaded", "folder", folder, "tracks", list.Len())

	opts := []app.Option{app.WithLogger(logger.Logger)}
	if cfg.SharePanel.DesktopNotify {
		opts = append(opts, app.WithNotifier(notify.New()))
	}

	m, err := app.New(cfg, list, stateMgr, opts...)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer m.Destroy()

	// All-motion reporting is needed for pointer enter/leave on the panels.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
