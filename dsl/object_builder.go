package dsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/runtype"
)

// ErrInvalidObject is wrapped by Build errors caused by builder misuse.
var ErrInvalidObject = errors.New("dsl: invalid object definition")

type objectField struct {
	key        string
	codec      runtype.Mixed
	optional   bool
	hasDefault bool
}

type objectBuilder struct {
	name          string
	fields        []objectField
	index         map[string]int
	unknownPolicy runtype.UnknownPolicy
	errs          []error
}

type fieldStep struct {
	b   *objectBuilder
	key string
}

// Object creates a new object builder. Fields are decoded in declaration order
// and unknown keys are stripped unless another policy is chosen. An empty name
// derives one from the fields, e.g. "{ id: string, tags?: Array<string> }".
func Object(name string) *objectBuilder {
	return &objectBuilder{
		name:          name,
		index:         map[string]int{},
		unknownPolicy: runtype.UnknownStrip,
	}
}

// Field registers a required field decoded by c.
func (b *objectBuilder) Field(key string, c runtype.Mixed) *fieldStep {
	if c == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: field %q has a nil codec", ErrInvalidObject, key))
	}
	if _, dup := b.index[key]; dup {
		b.errs = append(b.errs, fmt.Errorf("%w: duplicate field %q", ErrInvalidObject, key))
		return &fieldStep{b: b, key: key}
	}
	b.index[key] = len(b.fields)
	b.fields = append(b.fields, objectField{key: key, codec: c})
	return &fieldStep{b: b, key: key}
}

func (f *fieldStep) field() *objectField { return &f.b.fields[f.b.index[f.key]] }

// Required marks the field as required (default) and returns the builder.
// A missing required key is decoded as runtype.Undefined, which most codecs
// reject with code required.
func (f *fieldStep) Required() *objectBuilder {
	f.field().optional = false
	return f.b
}

// Optional lets the key be absent; absent keys are left out of the output.
func (f *fieldStep) Optional() *objectBuilder {
	f.field().optional = true
	return f.b
}

// Default substitutes v when the key is absent or null. v is decoded by the
// field codec, so it must satisfy the same rules as the input.
func (f *fieldStep) Default(v any) *objectBuilder {
	fd := f.field()
	if fd.codec != nil {
		fd.codec = withDefaultAny(fd.codec, v)
	}
	fd.optional = false
	fd.hasDefault = true
	return f.b
}

func (f *fieldStep) Field(key string, c runtype.Mixed) *fieldStep { return f.b.Field(key, c) }
func (f *fieldStep) UnknownStrict() *objectBuilder                { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *objectBuilder                 { return f.b.UnknownStrip() }
func (f *fieldStep) UnknownPassthrough() *objectBuilder           { return f.b.UnknownPassthrough() }
func (f *fieldStep) Partial() *objectBuilder                      { return f.b.Partial() }
func (f *fieldStep) Build() (runtype.Codec[map[string]any, map[string]any], error) {
	return f.b.Build()
}
func (f *fieldStep) MustBuild() runtype.Codec[map[string]any, map[string]any] {
	return f.b.MustBuild()
}

// UnknownStrict rejects undeclared keys, one unknown_key error per key.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknownPolicy = runtype.UnknownStrict
	return b
}

// UnknownStrip drops undeclared keys from the output.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.unknownPolicy = runtype.UnknownStrip
	return b
}

// UnknownPassthrough copies undeclared keys into the output unchanged.
func (b *objectBuilder) UnknownPassthrough() *objectBuilder {
	b.unknownPolicy = runtype.UnknownPassthrough
	return b
}

// Partial marks every field declared so far as optional.
func (b *objectBuilder) Partial() *objectBuilder {
	for i := range b.fields {
		if !b.fields[i].hasDefault {
			b.fields[i].optional = true
		}
	}
	return b
}

// Build validates the builder and returns the object codec.
func (b *objectBuilder) Build() (runtype.Codec[map[string]any, map[string]any], error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	fields := make([]objectField, len(b.fields))
	copy(fields, b.fields)
	name := b.name
	if name == "" {
		name = shapeName(fields)
	}
	o := &objectShape{name: name, fields: fields, unknownPolicy: b.unknownPolicy}
	o.declared = make(map[string]struct{}, len(fields))
	for _, f := range fields {
		o.declared[f.key] = struct{}{}
	}
	return runtype.New[map[string]any, map[string]any](name, o.is, o.validate, o.encode).WithSchema(o.jsonSchema), nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() runtype.Codec[map[string]any, map[string]any] {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

func shapeName(fields []objectField) string {
	if len(fields) == 0 {
		return "{}"
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		sep := ": "
		if f.optional {
			sep = "?: "
		}
		parts[i] = f.key + sep + f.codec.Name()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
