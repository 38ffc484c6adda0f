package reporter

import (
	json "github.com/goccy/go-json"

	"github.com/reoring/runtype"
)

// Issue is the structured form of one error, suitable for HTTP problem
// bodies and structured logs.
type Issue struct {
	Path     string `json:"path"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// Issues converts the errors of r using the default reporter.
func Issues[T any](r runtype.Result[T]) []Issue { return defaultReporter.Issues(r.Errors()) }

// Issues converts errs into Issue records. Path is a JSON Pointer; Message is
// the translated code message unless the error carries a custom one.
func (p *PathReporter) Issues(errs runtype.Errors) []Issue {
	out := make([]Issue, 0, len(errs))
	for _, e := range errs {
		it := Issue{
			Path:     e.Pointer(),
			Code:     e.Code,
			Message:  e.Message,
			Expected: e.Expected(),
		}
		if it.Message == "" {
			it.Message = p.tr.Message(e.Code, map[string]string{
				"expected": it.Expected,
				"path":     it.Path,
				"value":    p.value(e.Value),
			})
		}
		if e.Value != runtype.Undefined {
			it.Value = e.Value
		}
		out = append(out, it)
	}
	return out
}

// MarshalIssues encodes issues as a JSON array.
func MarshalIssues(issues []Issue) ([]byte, error) {
	if issues == nil {
		issues = []Issue{}
	}
	return json.Marshal(issues)
}
