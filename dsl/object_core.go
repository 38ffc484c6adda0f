package dsl

import (
	"sort"

	"github.com/reoring/runtype"
	js "github.com/reoring/runtype/jsonschema"
)

const unknownKeyName = "never"

type objectShape struct {
	name          string
	fields        []objectField
	declared      map[string]struct{}
	unknownPolicy runtype.UnknownPolicy
}

// unknownKeys returns the undeclared keys of src in ascending order for
// deterministic reporting.
func (o *objectShape) unknownKeys(src map[string]any) []string {
	var uks []string
	for k := range src {
		if _, known := o.declared[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	return uks
}

func (o *objectShape) is(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, f := range o.fields {
		val, present := m[f.key]
		if !present {
			if f.optional || f.codec.Is(runtype.Undefined) {
				continue
			}
			return false
		}
		if !f.codec.Is(val) {
			return false
		}
	}
	if o.unknownPolicy == runtype.UnknownStrict && len(o.unknownKeys(m)) > 0 {
		return false
	}
	return true
}

// decodeField decodes one declared key. A missing required key is decoded as
// Undefined; if the field codec rejects it the error is reported as required.
func (o *objectShape) decodeField(f objectField, src map[string]any, c runtype.Context) (any, bool, runtype.Errors) {
	val, present := src[f.key]
	if !present {
		if f.optional {
			return nil, false, nil
		}
		val = runtype.Undefined
	}
	r := f.codec.ValidateAny(val, c.Field(f.key, f.codec.Name(), val))
	dv, ok := r.Value()
	if !ok {
		errs := r.Errors()
		if !present {
			errs = markRequired(errs)
		}
		return nil, false, errs
	}
	if dv == runtype.Undefined {
		return nil, false, nil
	}
	return dv, true, nil
}

func markRequired(errs runtype.Errors) runtype.Errors {
	out := make(runtype.Errors, len(errs))
	for i, e := range errs {
		if e.Value == runtype.Undefined && e.Code == runtype.CodeInvalidType {
			e.Code = runtype.CodeRequired
		}
		out[i] = e
	}
	return out
}

func (o *objectShape) validate(v any, c runtype.Context) runtype.Result[map[string]any] {
	src, ok := asObject(v)
	if !ok {
		return runtype.Fail[map[string]any](v, c)
	}
	out := make(map[string]any, len(o.fields))
	var errs runtype.Errors
	for _, f := range o.fields {
		dv, keep, ferrs := o.decodeField(f, src, c)
		if len(ferrs) > 0 {
			errs = runtype.AppendErrors(errs, ferrs...)
			continue
		}
		if keep {
			out[f.key] = dv
		}
	}
	if o.unknownPolicy != runtype.UnknownStrip {
		for _, k := range o.unknownKeys(src) {
			val := src[k]
			switch o.unknownPolicy {
			case runtype.UnknownStrict:
				errs = runtype.AppendErrors(errs, runtype.ValidationError{
					Value:   val,
					Context: c.Field(k, unknownKeyName, val),
					Code:    runtype.CodeUnknownKey,
				})
			case runtype.UnknownPassthrough:
				out[k] = val
			}
		}
	}
	if len(errs) > 0 {
		return runtype.Failures[map[string]any](errs)
	}
	return runtype.Success(out)
}

func (o *objectShape) encode(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for _, f := range o.fields {
		if val, ok := m[f.key]; ok {
			out[f.key] = f.codec.EncodeAny(val)
		}
	}
	if o.unknownPolicy == runtype.UnknownPassthrough {
		for _, k := range o.unknownKeys(m) {
			out[k] = m[k]
		}
	}
	return out
}

func (o *objectShape) jsonSchema(defs *runtype.Definitions) *js.Schema {
	props := make(map[string]*js.Schema, len(o.fields))
	var req []string
	for _, f := range o.fields {
		props[f.key] = runtype.ProjectSchema(f.codec, defs)
		if !f.optional && !f.hasDefault {
			req = append(req, f.key)
		}
	}
	sort.Strings(req)
	// Strip and passthrough both accept unknown keys at runtime.
	var additional any = true
	if o.unknownPolicy == runtype.UnknownStrict {
		additional = false
	}
	return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: additional}
}
