// Package output is the single place user-facing color lives. It provides a
// lipgloss style set and a Printer that commands write through, so tests can
// capture output by injecting a plain writer.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles is the semantic style set used for shell output.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Accent  lipgloss.Style
	Fun     lipgloss.Style
	Muted   lipgloss.Style
	Banner  lipgloss.Style
	Prompt  lipgloss.Style
}

// DefaultStyles returns the standard cmdly color scheme. When the terminal
// reports no color support every style degrades to plain text.
func DefaultStyles() *Styles {
	if termenv.ColorProfile() == termenv.Ascii {
		plain := lipgloss.NewStyle()
		return &Styles{
			Success: plain, Error: plain, Warning: plain, Info: plain,
			Accent: plain, Fun: plain, Muted: plain, Banner: plain, Prompt: plain,
		}
	}
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Fun:     lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
	}
}

// Printer writes styled output to a writer. It satisfies
// shelltypes.Printer.
type Printer struct {
	w      io.Writer
	styles *Styles
}

// NewPrinter creates a printer over the given writer with the default
// style set.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: DefaultStyles()}
}

// NewStdoutPrinter creates a printer over os.Stdout.
func NewStdoutPrinter() *Printer {
	return NewPrinter(os.Stdout)
}

// Styles exposes the printer's style set for callers that compose their own
// lines (help tables, chat transcripts).
func (p *Printer) Styles() *Styles {
	return p.styles
}

// Print writes text without a trailing newline.
func (p *Printer) Print(text string) {
	fmt.Fprint(p.w, text)
}

// Println writes text followed by a newline.
func (p *Printer) Println(text string) {
	fmt.Fprintln(p.w, text)
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

// Success writes a line in the success style.
func (p *Printer) Success(text string) {
	fmt.Fprintln(p.w, p.styles.Success.Render(text))
}

// Error writes a single error line, prefixed distinctly from normal output.
func (p *Printer) Error(text string) {
	fmt.Fprintln(p.w, p.styles.Error.Render("error: "+text))
}

// Warning writes a line in the warning style.
func (p *Printer) Warning(text string) {
	fmt.Fprintln(p.w, p.styles.Warning.Render(text))
}

// Info writes a line in the info style.
func (p *Printer) Info(text string) {
	fmt.Fprintln(p.w, p.styles.Info.Render(text))
}
