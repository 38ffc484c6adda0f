// Package i18n provides message templates for validation reports.
//
// Translators are plain values; nothing in this package holds process-wide
// state. Pass one to reporter.WithTranslator to localize a report.
package i18n

import "strings"

// MsgInvalidValue is the template key for the one-line path report
// ("Invalid value 1 supplied to Person.age: number").
const MsgInvalidValue = "invalid_value"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "value", "path" or "expected"). Unknown codes return the code itself.
type Translator interface {
	Message(code string, data map[string]string) string
}

// Catalog is a dictionary Translator. Templates reference data with {name}
// placeholders; placeholders without data are left as is.
type Catalog map[string]string

func (c Catalog) Message(code string, data map[string]string) string {
	tmpl, ok := c[code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// English is the default catalog.
var English = Catalog{
	MsgInvalidValue: "Invalid value {value} supplied to {path}",
	"invalid_type":   "invalid type (expected {expected})",
	"invalid_format": "invalid format (expected {expected})",
	"required":       "required property missing",
	"unknown_key":    "unknown key",
	"refinement":     "value does not satisfy {expected}",
	"parse_error":    "parse error",
	"custom":         "invalid value",
}

// Japanese mirrors English.
var Japanese = Catalog{
	MsgInvalidValue: "{path} に不正な値 {value} が指定されました",
	"invalid_type":   "型が不正です ({expected} を期待)",
	"invalid_format": "形式が不正です ({expected} を期待)",
	"required":       "必須プロパティが不足しています",
	"unknown_key":    "未知のキーです",
	"refinement":     "{expected} を満たしていません",
	"parse_error":    "解析エラー",
	"custom":         "不正な値です",
}

// Lookup returns the built-in catalog for lang ("en" or "ja"), falling back
// to English.
func Lookup(lang string) Translator {
	if strings.EqualFold(lang, "ja") {
		return Japanese
	}
	return English
}
