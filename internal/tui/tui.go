// Package tui renders terminal views for long-running file operations and
// edit plans.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/juju/errors"

	"gosplice/internal/clock"
	"gosplice/internal/fsx"
)

// refreshInterval bounds how often progress reaches the program.
const refreshInterval = 50 * time.Millisecond

// Work is an operation shown by RunProgress. It reports through report and
// returns once ctx is cancelled.
type Work func(ctx context.Context, report fsx.ProgressFunc) error

// RunProgress runs work in the background while showing a progress bar
// titled title. Pressing q or Ctrl+C cancels the context passed to work.
// The returned error is the one from work.
func RunProgress(ctx context.Context, title string, work Work, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(&teaModelAdapter{initialModel(title, cancel)}, opts...)
	errc := startWork(ctx, work, clock.RealClock{}, p.Send)

	_, runErr := p.Run()
	cancel()
	err := <-errc
	if err == nil && runErr != nil {
		return errors.Annotate(runErr, "running progress view")
	}
	return err
}

// startWork runs work in its own goroutine. Throttled progress and the final
// result are delivered through send; the result is also sent on the
// returned channel once the goroutine is about to exit.
func startWork(ctx context.Context, work Work, clk clock.Clock, send func(tea.Msg)) <-chan error {
	errc := make(chan error, 1)
	throttle := NewThrottle(clk, refreshInterval, func(tp fsx.TransitProcess) {
		send(progressMsg(tp))
	})
	go func() {
		err := work(ctx, throttle.Report)
		send(doneMsg{err: err})
		errc <- err
	}()
	return errc
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return nil
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
