// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotapt/pkg/types"
)

// Renderer writes summaries as aligned plain text
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderSummary renders one block per report followed by the run verdict
func (r *Renderer) RenderSummary(summary types.RunSummary) error {
	var b strings.Builder

	if summary.DryRun {
		b.WriteString("DRY RUN: no command was executed\n\n")
	}
	for _, report := range summary.Reports {
		fmt.Fprintf(&b, "%s: %s\n", report.Directive, Verdict(report.Success))
		for _, p := range report.Packages {
			fmt.Fprintf(&b, "  %-28s %s\n", PackageLabel(p), p.Outcome)
		}
		if report.Malformed > 0 {
			fmt.Fprintf(&b, "  %d entries with incorrect format\n", report.Malformed)
		}
		if len(report.Tally) > 0 {
			fmt.Fprintf(&b, "  %s\n", TallyLine(report.Tally))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Run %s\n", RunVerdict(summary.Success))

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// PackageLabel names a package and, when present, its repository
func PackageLabel(p types.PackageResult) string {
	if p.Repository == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (ppa:%s)", p.Name, p.Repository)
}

// TallyLine joins tally entries as "2 Already up to date, 1 Not found"
func TallyLine(tally []types.TallyEntry) string {
	parts := make([]string, 0, len(tally))
	for _, e := range tally {
		parts = append(parts, fmt.Sprintf("%d %s", e.Count, e.Outcome))
	}
	return strings.Join(parts, ", ")
}

// Verdict is the short label for a report result
func Verdict(success bool) string {
	if success {
		return "ok"
	}
	return "failed"
}

// RunVerdict is the closing label for a run
func RunVerdict(success bool) string {
	if success {
		return "succeeded"
	}
	return "failed"
}
