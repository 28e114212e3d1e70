package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/dirnav/internal/backend"
	"github.com/atomicstack/dirnav/internal/browser"
	"github.com/atomicstack/dirnav/internal/logging"
	"github.com/atomicstack/dirnav/internal/logging/events"
	"github.com/atomicstack/dirnav/internal/theme"
	"github.com/atomicstack/dirnav/internal/ui"
	"github.com/atomicstack/dirnav/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const watchThrottle = 100 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	// Dir is the starting directory; empty means the working directory.
	Dir        string
	Tick       time.Duration
	Watch      bool
	ShowFooter bool
	NoColor    bool
	Width      int
	Height     int
}

// Run bootstraps the navigation loop and the Bubble Tea program that draws it.
func Run(cfg Config) error {
	return run(cfg, tea.WithAltScreen())
}

func run(cfg Config, opts ...tea.ProgramOption) error {
	dir := cfg.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}
	if cfg.NoColor {
		theme.DisableColor()
	}

	source := backend.NewSource(cfg.Tick)
	defer source.Stop()
	screen := ui.NewScreen()
	loop := &browser.Loop{
		Nav:      state.NewNavigation(dir),
		Source:   source,
		Renderer: screen,
	}
	if cfg.Watch {
		watcher, err := backend.NewDirWatcher(source, watchThrottle)
		if err != nil {
			// ticks still refresh the listing
			logging.Error(err)
		} else {
			defer watcher.Close()
			loop.Observer = watcher
		}
	}

	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	}, source, screen)
	program := tea.NewProgram(model, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loopErr := make(chan error, 1)
	go func() {
		err := loop.Run(ctx)
		source.Stop()
		screen.Finish(err)
		loopErr <- err
	}()

	_, runErr := program.Run()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		source.Fail(runErr)
	} else {
		cancel()
	}
	err := <-loopErr
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	events.App.Exit(err)
	return err
}
