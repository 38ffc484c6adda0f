// Package reporter turns failed decode results into human readable messages.
//
// The default format names the rejected value and where it was found:
//
//	Invalid value "x" supplied to Person.tags[1]: number
//
// The path starts with the root codec name and adds ".key" for object keys,
// "[i]" for array indices, "|i" for union branches and "&i" for intersection
// members. When the error is below the root the name of the deepest codec
// follows after ": ". Custom messages are reported verbatim.
package reporter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/reoring/runtype"
	"github.com/reoring/runtype/i18n"
)

// PathReporter formats errors. The zero value is not usable; use New.
type PathReporter struct {
	tr       i18n.Translator
	maxValue int
}

// Option configures a PathReporter.
type Option func(*PathReporter)

// WithTranslator localizes messages. A nil translator keeps English.
func WithTranslator(tr i18n.Translator) Option {
	return func(p *PathReporter) {
		if tr != nil {
			p.tr = tr
		}
	}
}

// WithMaxValueLength truncates rendered values longer than n runes, appending
// "...". Zero or a negative n disables truncation.
func WithMaxValueLength(n int) Option {
	return func(p *PathReporter) { p.maxValue = n }
}

// New returns a reporter configured by opts.
func New(opts ...Option) *PathReporter {
	p := &PathReporter{tr: i18n.English}
	for _, o := range opts {
		o(p)
	}
	return p
}

var defaultReporter = New()

// Report returns one message per error of r, in accumulation order. A
// successful result yields an empty slice.
func Report[T any](r runtype.Result[T]) []string { return defaultReporter.Messages(r.Errors()) }

// Messages formats errs. It is a pure function of errs and the reporter
// configuration.
func (p *PathReporter) Messages(errs runtype.Errors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, p.Message(e))
	}
	return out
}

// Message formats a single error.
func (p *PathReporter) Message(e runtype.ValidationError) string {
	if e.Message != "" {
		return e.Message
	}
	return p.tr.Message(i18n.MsgInvalidValue, map[string]string{
		"value":    p.value(e.Value),
		"path":     ContextPath(e.Context),
		"expected": e.Expected(),
		"code":     e.Code,
	})
}

func (p *PathReporter) value(v any) string {
	s := Stringify(v)
	if p.maxValue > 0 && utf8.RuneCountInString(s) > p.maxValue {
		s = string([]rune(s)[:p.maxValue]) + "..."
	}
	return s
}

// ContextPath renders c in the report path format, e.g.
// "Person.tags[1]: number".
func ContextPath(c runtype.Context) string {
	var b strings.Builder
	for i, e := range c {
		switch e.Kind {
		case runtype.KeyRoot:
			b.WriteString(e.Name)
		case runtype.KeyField:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(e.Key)
		case runtype.KeyIndex:
			b.WriteString("[" + e.Key + "]")
		case runtype.KeyBranch:
			b.WriteString("|" + e.Key)
		case runtype.KeyMember:
			b.WriteString("&" + e.Key)
		}
	}
	if len(c) > 1 || (len(c) == 1 && c[0].Kind != runtype.KeyRoot) {
		last := c[len(c)-1]
		b.WriteString(": " + last.Name)
	}
	return b.String()
}

// Stringify renders v as JSON. runtype.Undefined renders as "undefined" and
// values JSON cannot represent fall back to fmt.
func Stringify(v any) string {
	if v == runtype.Undefined {
		return "undefined"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
