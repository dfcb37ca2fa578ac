package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// LaunchTUI initializes and launches the terminal UI using Bubbletea.
func LaunchTUI(opts Options) error {
	if opts.Calculator == nil {
		return errors.New("tui: calculator is required")
	}
	if opts.Diary == nil {
		return errors.New("tui: diary is required")
	}

	m := NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
