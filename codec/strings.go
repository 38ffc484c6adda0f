// Package codec holds codecs whose transport representation differs from
// their output, e.g. numbers carried as strings in query parameters or form
// fields.
package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/reoring/runtype"
	"github.com/reoring/runtype/dsl"
	js "github.com/reoring/runtype/jsonschema"
)

// fromString builds a codec that first requires a string and then converts it
// with parse. A rejected conversion is reported as invalid_format with msg,
// carrying the raw input.
func fromString[O any](name string, parse func(string) (O, bool), format func(O) string, msg string, schemaFormat string) runtype.Codec[O, string] {
	str := dsl.String()
	return runtype.New[O, string](
		name,
		nil,
		func(u any, c runtype.Context) runtype.Result[O] {
			return runtype.Chain(str.Validate(u, c), func(s string) runtype.Result[O] {
				o, ok := parse(s)
				if !ok {
					return runtype.FailCode[O](runtype.CodeInvalidFormat, u, c, msg)
				}
				return runtype.Success(o)
			})
		},
		format,
	).WithSchema(func(*runtype.Definitions) *js.Schema {
		return &js.Schema{Type: "string", Format: schemaFormat, Description: name}
	})
}

var numberFromString = fromString(
	"NumberFromString",
	parseNumber,
	func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
	"cannot parse to a number",
	"",
)

// NumberFromString decodes decimal strings such as "1", "-2.5" or "1e3" into
// float64. Surrounding whitespace is ignored. Empty or whitespace-only strings
// are rejected rather than read as 0, and so are NaN and infinities. Encoding
// uses the shortest decimal form.
func NumberFromString() runtype.Codec[float64, string] { return numberFromString }

var integerFromString = dsl.Refine(NumberFromString(), dsl.IsInteger, "IntegerFromString")

// IntegerFromString is NumberFromString refined to whole numbers: "3"
// decodes, "1.5" fails with code refinement.
func IntegerFromString() runtype.Codec[float64, string] { return integerFromString }

var booleanFromString = fromString(
	"BooleanFromString",
	func(s string) (bool, bool) {
		switch s {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return false, false
	},
	strconv.FormatBool,
	"cannot parse to a boolean",
	"",
)

// BooleanFromString accepts exactly "true" and "false".
func BooleanFromString() runtype.Codec[bool, string] { return booleanFromString }

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
