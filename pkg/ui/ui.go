// Package ui renders run summaries and errors in terminal (rich), text
// (plain) or JSON form.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/types"
	"github.com/arthur-debert/dotapt/pkg/ui/json"
	"github.com/arthur-debert/dotapt/pkg/ui/terminal"
	"github.com/arthur-debert/dotapt/pkg/ui/text"
)

// Renderer is implemented by every output format
type Renderer interface {
	// RenderSummary renders the reports of one run
	RenderSummary(summary types.RunSummary) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
