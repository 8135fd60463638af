package report

import (
	"errors"
	"fmt"
	"io"

	"projector/internal/resolver"
)

// ErrorDoc is the serialised form of a resolution failure.
type ErrorDoc struct {
	Code      string `json:"code" yaml:"code"`
	Message   string `json:"message" yaml:"message"`
	Operation string `json:"operation,omitempty" yaml:"operation,omitempty"`
	Expected  *int   `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual    *int   `json:"actual,omitempty" yaml:"actual,omitempty"`
	Variable  string `json:"variable,omitempty" yaml:"variable,omitempty"`
}

type errorEnvelope struct {
	Error ErrorDoc `json:"error" yaml:"error"`
}

// ErrorCode maps a resolution error to a stable code.
func ErrorCode(err error) string {
	var countErr *resolver.ArgumentCountError
	var envErr *resolver.MissingEnvError
	var wdErr *resolver.WorkingDirError
	switch {
	case errors.As(err, &countErr):
		return CodeArgumentCount
	case errors.As(err, &envErr):
		return CodeMissingEnv
	case errors.As(err, &wdErr):
		return CodeWorkingDirMissing
	default:
		return CodeInternal
	}
}

// NewErrorDoc converts err into its serialisable form.
func NewErrorDoc(err error) ErrorDoc {
	doc := ErrorDoc{Code: ErrorCode(err), Message: err.Error()}

	var countErr *resolver.ArgumentCountError
	if errors.As(err, &countErr) {
		expected, actual := countErr.Expected, countErr.Actual
		doc.Operation = countErr.Operation
		doc.Expected = &expected
		doc.Actual = &actual
	}

	var envErr *resolver.MissingEnvError
	if errors.As(err, &envErr) {
		doc.Variable = envErr.Name
	}
	return doc
}

// RenderError writes err to w in format f.
// Text output follows the "Error: {message}" form.
func RenderError(w io.Writer, err error, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, errorEnvelope{Error: NewErrorDoc(err)})
	case FormatYAML:
		return writeYAML(w, errorEnvelope{Error: NewErrorDoc(err)})
	default:
		_, werr := fmt.Fprintln(w, "Error:", err)
		return werr
	}
}
