// Package output provides context-aware output for ghqmv.
// Stdout is used for primary data (source/target paths, config dumps).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/ghqmv/internal/ui/styles"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w     io.Writer
	color bool
}

// New creates a new Printer writing to the given writer.
// Styling is enabled only when w is a terminal.
func New(w io.Writer) *Printer {
	return &Printer{w: w, color: isTerminal(w)}
}

// WithPrinter attaches a Printer for w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Field writes a "Label: value" line.
func (p *Printer) Field(label, value string) {
	if p.color {
		label = styles.LabelStyle().Render(label + ":")
	} else {
		label += ":"
	}
	fmt.Fprintf(p.w, "%s %s\n", label, value)
}

// Success writes a confirmation line.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if p.color {
		msg = styles.SuccessStyle().Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// IsTerminal reports whether the printer writes to a terminal.
func (p *Printer) IsTerminal() bool {
	return p.color
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
