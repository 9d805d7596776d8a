// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/types"
	"github.com/arthur-debert/dotapt/pkg/ui/styles"
	"github.com/arthur-debert/dotapt/pkg/ui/text"
)

const (
	markOK   = "✓"
	markFail = "✗"
)

// Renderer writes styled summaries
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderSummary renders one styled block per report
func (r *Renderer) RenderSummary(summary types.RunSummary) error {
	var b strings.Builder

	if summary.DryRun {
		b.WriteString(styles.Get("DryRunBanner").Render("DRY RUN: no command was executed"))
		b.WriteString("\n")
	}

	for _, report := range summary.Reports {
		b.WriteString(styles.Get("Header").Render(report.Directive))
		b.WriteString(" ")
		b.WriteString(mark(report.Success))
		b.WriteString("\n")

		for _, p := range report.Packages {
			label := p.Name
			if p.Repository != "" {
				label += " " + styles.Get("Repository").Render("ppa:"+p.Repository)
			}
			b.WriteString(styles.Get("Package").Render(label))
			b.WriteString(outcome(p))
			b.WriteString("\n")
		}
		if report.Malformed > 0 {
			b.WriteString("  ")
			b.WriteString(styles.Get("Warning").Render(fmt.Sprintf("%d entries with incorrect format", report.Malformed)))
			b.WriteString("\n")
		}
		if len(report.Tally) > 0 {
			b.WriteString("  ")
			b.WriteString(styles.Get("Muted").Render(text.TallyLine(report.Tally)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	verdict := "Run " + text.RunVerdict(summary.Success)
	if summary.Success {
		b.WriteString(styles.Get("Success").Render(verdict))
	} else {
		b.WriteString(styles.Get("Error").Render(verdict))
	}
	b.WriteString("\n")

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with its code when known
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = fmt.Sprintf("%s %s", styles.Get("Muted").Render(string(code)), msg)
	}
	_, writeErr := fmt.Fprintln(r.output, styles.Get("Error").Render(markFail+" ")+msg)
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Get("Bold").Render(msg))
	return err
}

func mark(success bool) string {
	if success {
		return styles.Get("Success").Render(markOK)
	}
	return styles.Get("Error").Render(markFail)
}

func outcome(p types.PackageResult) string {
	if p.Success {
		return styles.Get("Success").Render(p.Outcome)
	}
	return styles.Get("Error").Render(p.Outcome)
}
