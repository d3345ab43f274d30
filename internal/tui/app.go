package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/signup/internal/errors"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new board application
func New(api API, opts Options) *App {
	return &App{model: NewModel(api, opts)}
}

// Run starts the board and blocks until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.program = tea.NewProgram(
		a.model.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	// Quit cleanly on termination so the terminal is restored
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		select {
		case <-sigChan:
			a.program.Send(tea.Quit())
		case <-ctx.Done():
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)
	// A cancelled context is a normal way to stop
	if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
