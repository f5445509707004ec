package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gosplice/internal/fsx"
)

// Update handles all Bubbletea update logic for the progress model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case progressMsg:
		m.status = fsx.TransitProcess(msg)
		return m, nil
	case doneMsg:
		return handleDoneMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}
	return m, nil
}

func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.done || m.cancelled {
		return m, nil
	}
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}
	return m, nil
}

func handleDoneMsg(m model, msg doneMsg) (model, tea.Cmd) {
	m.done = true
	m.err = msg.err
	return m, tea.Quit
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.bar.Width = barWidth(msg.Width)
	return m, nil
}
