// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderSummary encodes the run summary as is
func (r *Renderer) RenderSummary(summary types.RunSummary) error {
	if summary.Reports == nil {
		summary.Reports = []types.Report{}
	}
	return r.encoder.Encode(summary)
}

type errorObject struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	obj := errorObject{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		obj.Code = string(code)
		obj.Details = errors.GetErrorDetails(err)
	}
	return r.encoder.Encode(obj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
