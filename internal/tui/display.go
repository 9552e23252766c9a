package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/shopdesk/internal/customer"
)

// Display runs an interactive customers session until the user quits.
type Display interface {
	Run(ctx context.Context) error
}

// Verify at compile time that both front ends implement Display.
var (
	_ Display = (*TUIDisplay)(nil)
	_ Display = (*Console)(nil)
)

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	Reader     io.Reader // Input source (default: os.Stdin).
	ForcePlain bool      // Force the line console even on a TTY.
	Options    []Option  // Presentation options for either front end.
}

// NewDisplay returns the terminal screen when the writer is a TTY, or a
// line console otherwise. ForcePlain overrides TTY detection.
func NewDisplay(ctrl *customer.Controller, opts DisplayOptions) Display {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Reader == nil {
		opts.Reader = os.Stdin
	}

	if opts.ForcePlain || !isTTY(opts.Writer) {
		return NewConsole(ctrl, opts.Reader, opts.Writer, opts.Options...)
	}

	return &TUIDisplay{ctrl: ctrl, r: opts.Reader, w: opts.Writer, opts: opts.Options}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TUIDisplay runs the customers screen as a Bubble Tea program.
// Falls back to the line console if the program fails to start.
type TUIDisplay struct {
	ctrl *customer.Controller
	r    io.Reader
	w    io.Writer
	opts []Option
}

// Run starts the Bubble Tea program and blocks until it exits.
func (d *TUIDisplay) Run(ctx context.Context) error {
	p := tea.NewProgram(
		NewModel(d.ctrl, d.opts...),
		tea.WithContext(ctx),
		tea.WithInput(d.r),
		tea.WithOutput(d.w),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return NewConsole(d.ctrl, d.r, d.w, d.opts...).Run(ctx)
	}
	return nil
}
