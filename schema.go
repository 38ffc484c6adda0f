package runtype

import (
	"strconv"

	js "github.com/reoring/runtype/jsonschema"
)

// Definitions collects schemas shared through $ref. Entries are keyed by the
// identity of the codec that defines them; codec names only label the entry
// and get a numeric suffix when two different codecs share a name.
type Definitions struct {
	schemas map[string]*js.Schema
	owners  map[any]string
}

// NewDefinitions returns an empty registry.
func NewDefinitions() *Definitions {
	return &Definitions{schemas: map[string]*js.Schema{}, owners: map[any]string{}}
}

// Ref returns a $ref schema for owner, registering the definition on first
// use. owner must be comparable and unique per defining codec. build runs once
// per owner; references to owner made while build runs resolve to the same
// $ref, which is how recursive codecs terminate.
func (d *Definitions) Ref(owner any, name string, build func() *js.Schema) *js.Schema {
	if n, ok := d.owners[owner]; ok {
		return &js.Schema{Ref: js.DefRef(n)}
	}
	n := name
	for i := 2; ; i++ {
		if _, taken := d.schemas[n]; !taken {
			break
		}
		n = name + "_" + strconv.Itoa(i)
	}
	d.owners[owner] = n
	d.schemas[n] = &js.Schema{}
	d.schemas[n] = build()
	return &js.Schema{Ref: js.DefRef(n)}
}

// Len reports the number of registered definitions.
func (d *Definitions) Len() int { return len(d.schemas) }

// Schemas returns a copy of the registered definitions keyed by $defs name.
func (d *Definitions) Schemas() map[string]*js.Schema {
	out := make(map[string]*js.Schema, len(d.schemas))
	for k, v := range d.schemas {
		out[k] = v
	}
	return out
}

// SchemaProjector is implemented by codecs that can describe themselves as
// JSON Schema.
type SchemaProjector interface {
	ProjectSchema(defs *Definitions) *js.Schema
}

// ProjectSchema projects c using defs. Codecs without a projection map to the
// empty schema, which accepts anything.
func ProjectSchema(c Mixed, defs *Definitions) *js.Schema {
	if p, ok := c.(SchemaProjector); ok {
		if s := p.ProjectSchema(defs); s != nil {
			return s
		}
	}
	return &js.Schema{}
}

// JSONSchema projects c into a standalone JSON Schema document.
func JSONSchema(c Mixed) *js.Schema {
	defs := NewDefinitions()
	s := ProjectSchema(c, defs)
	if defs.Len() > 0 {
		s.Defs = defs.Schemas()
	}
	return s
}
