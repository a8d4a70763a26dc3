// Package spinner renders a loading indicator while a long operation runs.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumebuddy/internal/logger"
)

// Options configures a spinner run.
type Options struct {
	// Label is shown next to the spinner.
	Label string

	// Output receives the spinner frames. Defaults to os.Stderr.
	Output io.Writer

	// Interactive enables the spinner. When false the task runs silently.
	Interactive bool

	// Styles colours the label. Defaults to the dark theme.
	Styles *styles.Styles

	// Cancelable lets ctrl+c cancel the task context. When false the task
	// always runs to completion or failure and ctrl+c only shows a notice.
	Cancelable bool

	// programOptions are extra options used by tests.
	programOptions []tea.ProgramOption
}

// interrupt returns the function ctrl+c runs, or nil when it is ignored.
func (o Options) interrupt(cancel context.CancelFunc) context.CancelFunc {
	if !o.Cancelable {
		return nil
	}
	return cancel
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

const ignoredNotice = "The request cannot be cancelled; waiting for the model to answer."

// doneMsg carries the task result into the program.
type doneMsg struct {
	err error
}

// model is the bubbletea model for the spinner.
type model struct {
	spinner spinner.Model
	label   string
	styles  *styles.Styles
	started time.Time
	now     func() time.Time
	cancel  context.CancelFunc
	done    bool
	ignored bool
}

func newModel(label string, st *styles.Styles, cancel context.CancelFunc) *model {
	if st == nil {
		st = styles.NewStyles(nil)
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Title
	return &model{
		spinner: sp,
		label:   label,
		styles:  st,
		started: time.Now(),
		now:     time.Now,
		cancel:  cancel,
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() != "ctrl+c" {
			return m, nil
		}
		// The task observes the cancelled context and reports back.
		if m.cancel != nil {
			m.cancel()
		} else {
			m.ignored = true
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *model) View() string {
	if m.done {
		return ""
	}
	elapsed := m.now().Sub(m.started).Truncate(time.Second)
	view := fmt.Sprintf("%s %s %s\n",
		m.spinner.View(),
		m.styles.Normal.Render(m.label),
		m.styles.Muted.Render(fmt.Sprintf("(%s)", elapsed)))
	if m.ignored {
		view += m.styles.Muted.Render(ignoredNotice) + "\n"
	}
	return view
}

// Run executes task, showing a spinner while it is outstanding. With
// Cancelable set, the context passed to task is cancelled if the user
// presses ctrl+c.
func Run(ctx context.Context, opts Options, task func(ctx context.Context) error) error {
	if !opts.Interactive {
		return task(ctx)
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	programOpts := append([]tea.ProgramOption{tea.WithOutput(opts.Output)}, opts.programOptions...)
	p := tea.NewProgram(newModel(opts.Label, opts.Styles, opts.interrupt(cancel)), programOpts...)

	result := make(chan error, 1)
	go func() {
		err := task(ctx)
		result <- err
		p.Send(doneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		logger.Debug("Spinner stopped: %v", err)
	}
	return <-result
}
