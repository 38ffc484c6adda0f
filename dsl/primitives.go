package dsl

import (
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

var stringCodec = runtype.New[string, string](
	"string",
	nil,
	func(v any, c runtype.Context) runtype.Result[string] {
		s, ok := v.(string)
		if !ok {
			return runtype.Fail[string](v, c)
		}
		return runtype.Success(s)
	},
	runtype.Identity[string],
).WithSchema(func(*runtype.Definitions) *js.Schema { return &js.Schema{Type: "string"} })

// String returns the codec for strings.
func String() runtype.Codec[string, string] { return stringCodec }

var numberCodec = runtype.New[float64, float64](
	"number",
	nil,
	func(v any, c runtype.Context) runtype.Result[float64] {
		f, ok := toFloat64(v)
		if !ok {
			return runtype.Fail[float64](v, c)
		}
		return runtype.Success(f)
	},
	runtype.Identity[float64],
).WithSchema(func(*runtype.Definitions) *js.Schema { return &js.Schema{Type: "number"} })

// Number returns the codec for numbers. Every Go numeric kind and values with
// a Float64 method (json.Number) are accepted and decoded to float64.
func Number() runtype.Codec[float64, float64] { return numberCodec }

var boolCodec = runtype.New[bool, bool](
	"boolean",
	nil,
	func(v any, c runtype.Context) runtype.Result[bool] {
		b, ok := v.(bool)
		if !ok {
			return runtype.Fail[bool](v, c)
		}
		return runtype.Success(b)
	},
	runtype.Identity[bool],
).WithSchema(func(*runtype.Definitions) *js.Schema { return &js.Schema{Type: "boolean"} })

// Bool returns the codec for booleans.
func Bool() runtype.Codec[bool, bool] { return boolCodec }

var unknownCodec = runtype.New[any, any](
	"unknown",
	func(any) bool { return true },
	func(v any, _ runtype.Context) runtype.Result[any] { return runtype.Success(v) },
	runtype.Identity[any],
)

// Unknown accepts every value unchanged.
func Unknown() runtype.Codec[any, any] { return unknownCodec }

var nullCodec = runtype.New[any, any](
	"null",
	func(v any) bool { return v == nil },
	func(v any, c runtype.Context) runtype.Result[any] {
		if v != nil {
			return runtype.Fail[any](v, c)
		}
		return runtype.Success[any](nil)
	},
	runtype.Identity[any],
).WithSchema(func(*runtype.Definitions) *js.Schema { return &js.Schema{Type: "null"} })

// Null accepts only nil.
func Null() runtype.Codec[any, any] { return nullCodec }

var undefinedCodec = runtype.New[any, any](
	"undefined",
	func(v any) bool { return v == runtype.Undefined },
	func(v any, c runtype.Context) runtype.Result[any] {
		if v != runtype.Undefined {
			return runtype.Fail[any](v, c)
		}
		return runtype.Success(runtype.Undefined)
	},
	runtype.Identity[any],
)

// UndefinedType accepts only runtype.Undefined (an absent key).
func UndefinedType() runtype.Codec[any, any] { return undefinedCodec }

// Literal accepts exactly v. Numeric literals compare after float64
// conversion so that decoded JSON numbers match integer literals.
func Literal[T comparable](v T) runtype.Codec[T, T] {
	match := func(u any) bool {
		if t, ok := u.(T); ok {
			return t == v
		}
		lf, lok := toFloat64(v)
		uf, uok := toFloat64(u)
		return lok && uok && lf == uf
	}
	return runtype.New[T, T](
		stringify(v),
		func(u any) bool { t, ok := u.(T); return ok && t == v },
		func(u any, c runtype.Context) runtype.Result[T] {
			if !match(u) {
				return runtype.Fail[T](u, c)
			}
			return runtype.Success(v)
		},
		runtype.Identity[T],
	).WithSchema(func(*runtype.Definitions) *js.Schema { return &js.Schema{Const: v} })
}

// Enum accepts one of the given strings. The name lists the values joined by
// " | ", e.g. "a" | "b".
func Enum(values ...string) runtype.Codec[string, string] {
	allowed := slices.Clone(values)
	names := make([]string, len(allowed))
	enum := make([]any, len(allowed))
	for i, s := range allowed {
		names[i] = stringify(s)
		enum[i] = s
	}
	is := func(v any) bool {
		s, ok := v.(string)
		return ok && slices.Contains(allowed, s)
	}
	return runtype.New[string, string](
		strings.Join(names, " | "),
		is,
		func(v any, c runtype.Context) runtype.Result[string] {
			if !is(v) {
				return runtype.Fail[string](v, c)
			}
			return runtype.Success(v.(string))
		},
		runtype.Identity[string],
	).WithSchema(func(*runtype.Definitions) *js.Schema { return &js.Schema{Type: "string", Enum: enum} })
}

// IsInteger reports whether f is a finite whole number.
func IsInteger(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
}

var integerCodec = Refine(Number(), IsInteger, "Integer")

// Integer is Number refined to whole numbers.
func Integer() runtype.Codec[float64, float64] { return integerCodec }

type float64er interface{ Float64() (float64, error) }

// toFloat64 converts Go numeric kinds to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64er:
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
