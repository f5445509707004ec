package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"

	"gosplice/internal/fsx"
)

const (
	defaultWidth = 80
	maxBarWidth  = 60
)

// Message types for the progress update loop
type progressMsg fsx.TransitProcess
type doneMsg struct{ err error }

// model is the Bubbletea model of a running operation.
type model struct {
	title     string
	bar       progress.Model
	status    fsx.TransitProcess
	width     int
	done      bool
	cancelled bool
	err       error
	cancel    context.CancelFunc // stops the running operation
}

// initialModel creates the model for an operation described by title.
func initialModel(title string, cancel context.CancelFunc) model {
	return model{
		title:  title,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth(defaultWidth))),
		width:  defaultWidth,
		cancel: cancel,
	}
}

// percent is the completed share of the operation in [0, 1].
func (m model) percent() float64 {
	if m.status.TotalBytes == 0 {
		if m.done && m.err == nil {
			return 1
		}
		return 0
	}
	return min(float64(m.status.CopiedBytes)/float64(m.status.TotalBytes), 1)
}

// barWidth fits the bar into a terminal of the given width.
func barWidth(termWidth int) int {
	return max(min(termWidth-4, maxBarWidth), 10)
}
