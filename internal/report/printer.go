package report

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/fyplab/fypml/internal/schema"
)

// Printer writes human-facing result lines. With styling off every method
// degrades to plain text with the same wording.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter creates a Printer for stdout, with styling when stdout is an
// interactive terminal and neither NO_COLOR nor CI is set.
func NewPrinter() *Printer {
	return &Printer{w: os.Stdout, styled: styledOutput()}
}

// NewPlainPrinter creates an unstyled Printer for the given writer.
// Used by tests and for machine-consumed output.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func styledOutput() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Validation prints one line per file plus the finding details.
func (p *Printer) Validation(path string, result schema.ValidationResult) {
	if result.Valid {
		fmt.Fprintf(p.w, "%s %s: valid\n", p.ok(symbolCheck), p.path(path))
		return
	}
	fmt.Fprintf(p.w, "%s %s: %d finding(s)\n", p.bad(symbolCross), p.path(path), len(result.Errors))
	for _, e := range result.Errors {
		fmt.Fprintf(p.w, "%s\n", p.detail(e))
	}
}

// Migration prints the per-file migration outcome.
func (p *Printer) Migration(path, outPath string, from, to int) {
	if from == to {
		fmt.Fprintf(p.w, "%s %s: already at schema version %d\n", p.ok(symbolCheck), p.path(path), to)
		return
	}
	fmt.Fprintf(p.w, "%s %s: schema version %d -> %d, written to %s\n",
		p.ok(symbolCheck), p.path(path), from, to, outPath)
}

// Failure prints a per-file error line.
func (p *Printer) Failure(path string, err error) {
	fmt.Fprintf(p.w, "%s %s: %v\n", p.bad(symbolCross), p.path(path), err)
}

// Info prints one line of document facts for the info command.
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) ok(s string) string {
	if p.styled {
		return successStyle.Render(s)
	}
	return s
}

func (p *Printer) bad(s string) string {
	if p.styled {
		return errorStyle.Render(s)
	}
	return s
}

func (p *Printer) path(s string) string {
	if p.styled {
		return pathStyle.Render(s)
	}
	return s
}

func (p *Printer) detail(s string) string {
	if p.styled {
		return detailStyle.Render(s)
	}
	return "  " + s
}
