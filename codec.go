package runtype

import (
	js "github.com/reoring/runtype/jsonschema"
)

// Mixed is the type-erased view of a codec. Combinators that hold children of
// different output types (object fields, unions, intersections) work on Mixed.
type Mixed interface {
	// Name identifies the codec in reports and derived names. Names are not
	// unique and must not be used as lookup keys.
	Name() string
	// Is reports whether v is already a valid output value. It is pure.
	Is(v any) bool
	// ValidateAny is Validate with the output type erased.
	ValidateAny(v any, c Context) Result[any]
	// EncodeAny encodes an output value. Values that are not of the codec's
	// output type are returned unchanged.
	EncodeAny(v any) any
}

// Codec is a named, bidirectional transformation between untyped input, the
// typed output O and the transport representation I.
type Codec[O, I any] interface {
	Mixed
	// Validate decodes v at the location described by c. It never panics for
	// any input and every failure carries c (or an extension of it).
	Validate(v any, c Context) Result[O]
	// Decode validates v as a top-level value.
	Decode(v any) Result[O]
	// Encode converts a valid output back to its transport representation.
	// Encoding does not validate.
	Encode(o O) I
}

// ValidateFunc is the decode step of a codec.
type ValidateFunc[O any] func(v any, c Context) Result[O]

// Type is the concrete Codec built from its four parts.
type Type[O, I any] struct {
	name     string
	is       func(any) bool
	validate ValidateFunc[O]
	encode   func(O) I
	project  func(*Definitions) *js.Schema
}

var _ Codec[string, string] = (*Type[string, string])(nil)

// New assembles a codec. A nil is defaults to a type assertion on O; a nil
// encode is only allowed when O and I are the same type (identity).
func New[O, I any](name string, is func(any) bool, validate ValidateFunc[O], encode func(O) I) *Type[O, I] {
	if is == nil {
		is = func(v any) bool { _, ok := v.(O); return ok }
	}
	if encode == nil {
		encode = func(o O) I {
			i, _ := any(o).(I)
			return i
		}
	}
	return &Type[O, I]{name: name, is: is, validate: validate, encode: encode}
}

// WithSchema attaches a JSON Schema projection and returns t.
func (t *Type[O, I]) WithSchema(fn func(*Definitions) *js.Schema) *Type[O, I] {
	t.project = fn
	return t
}

func (t *Type[O, I]) Name() string  { return t.name }
func (t *Type[O, I]) Is(v any) bool { return t.is(v) }

func (t *Type[O, I]) Validate(v any, c Context) Result[O] { return t.validate(v, c) }

func (t *Type[O, I]) Decode(v any) Result[O] { return t.validate(v, Root(t.name, v)) }

func (t *Type[O, I]) Encode(o O) I { return t.encode(o) }

func (t *Type[O, I]) ValidateAny(v any, c Context) Result[any] { return t.validate(v, c).Erase() }

func (t *Type[O, I]) EncodeAny(v any) any {
	if o, ok := v.(O); ok {
		return t.encode(o)
	}
	return v
}

// ProjectSchema implements SchemaProjector.
func (t *Type[O, I]) ProjectSchema(defs *Definitions) *js.Schema {
	if t.project == nil {
		return &js.Schema{}
	}
	return t.project(defs)
}

// DecodeAny decodes v as a top-level value with a type-erased codec.
func DecodeAny(c Mixed, v any) Result[any] { return c.ValidateAny(v, Root(c.Name(), v)) }

// Identity returns an encode function for codecs whose output and transport
// representations coincide.
func Identity[T any](v T) T { return v }
