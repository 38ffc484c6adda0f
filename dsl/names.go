package dsl

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/runtype"
)

// stringify renders v the way it appears in derived codec names: JSON when
// possible, fmt otherwise.
func stringify(v any) string {
	if v == runtype.Undefined {
		return "undefined"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// joinNames joins the names of codecs with sep, e.g. "(string | number)".
func joinNames(cs []runtype.Mixed, sep string) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name()
	}
	return "(" + strings.Join(names, sep) + ")"
}
