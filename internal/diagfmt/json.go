package diagfmt

import (
	"encoding/json"
	"io"

	"texcalc/internal/diag"
	"texcalc/internal/source"
)

type ErrorOutput struct {
	Path     string      `json:"path,omitempty"`
	Code     string      `json:"code"`
	Kind     string      `json:"kind"`
	Message  string      `json:"message"`
	Span     source.Span `json:"span"`
	Line     uint32      `json:"line,omitempty"`
	Col      uint32      `json:"col,omitempty"`
	Name     string      `json:"name,omitempty"`
	Expected string      `json:"expected,omitempty"`
	Found    string      `json:"found,omitempty"`
}

// BuildErrorOutput converts err into its serialisable form.
func BuildErrorOutput(src string, err *diag.Error, opts JSONOpts) ErrorOutput {
	out := ErrorOutput{
		Path:     opts.Path,
		Code:     err.Code().ID(),
		Kind:     err.Kind.String(),
		Message:  err.Message(),
		Span:     err.Span,
		Name:     err.Name,
		Expected: err.Expected,
		Found:    err.Found,
	}
	if opts.IncludePositions {
		pos := source.LineColAt(src, err.Span.Start)
		out.Line, out.Col = pos.Line, pos.Col
	}
	return out
}

// FormatErrorJSON writes err as an indented JSON object.
func FormatErrorJSON(w io.Writer, src string, err *diag.Error, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildErrorOutput(src, err, opts))
}
