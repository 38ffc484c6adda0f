package runtype

import (
	"strconv"
	"strings"
)

// KeyKind classifies the traversal step recorded by a context Entry.
type KeyKind uint8

const (
	KeyRoot   KeyKind = iota // Top-level decode call.
	KeyField                 // Object or record key.
	KeyIndex                 // Array index.
	KeyBranch                // Union branch index.
	KeyMember                // Intersection member index.
)

func (k KeyKind) String() string {
	switch k {
	case KeyRoot:
		return "root"
	case KeyField:
		return "field"
	case KeyIndex:
		return "index"
	case KeyBranch:
		return "branch"
	case KeyMember:
		return "member"
	default:
		return "unknown"
	}
}

// Entry describes one step of the location trail.
type Entry struct {
	Kind   KeyKind
	Key    string // Field name, or the decimal index for index/branch/member steps.
	Name   string // Name of the codec active at this step.
	Actual any    // Sub-value checked at this step.
}

// Context is the ordered location trail of a decode call. It is treated as
// immutable: every extension returns a fresh slice and never writes into the
// receiver's backing array.
type Context []Entry

// Root returns the context used by top-level decode calls.
func Root(name string, actual any) Context {
	return Context{{Kind: KeyRoot, Name: name, Actual: actual}}
}

// Append returns a copy of c extended with e.
func (c Context) Append(e Entry) Context {
	out := make(Context, len(c)+1)
	copy(out, c)
	out[len(c)] = e
	return out
}

// Field extends the context with an object key step.
func (c Context) Field(key, name string, actual any) Context {
	return c.Append(Entry{Kind: KeyField, Key: key, Name: name, Actual: actual})
}

// Index extends the context with an array index step.
func (c Context) Index(i int, name string, actual any) Context {
	return c.Append(Entry{Kind: KeyIndex, Key: strconv.Itoa(i), Name: name, Actual: actual})
}

// Branch extends the context with a union branch step.
func (c Context) Branch(i int, name string, actual any) Context {
	return c.Append(Entry{Kind: KeyBranch, Key: strconv.Itoa(i), Name: name, Actual: actual})
}

// Member extends the context with an intersection member step.
func (c Context) Member(i int, name string, actual any) Context {
	return c.Append(Entry{Kind: KeyMember, Key: strconv.Itoa(i), Name: name, Actual: actual})
}

// Last returns the deepest entry.
func (c Context) Last() (Entry, bool) {
	if len(c) == 0 {
		return Entry{}, false
	}
	return c[len(c)-1], true
}

// Pointer renders the value location as an RFC 6901 JSON Pointer. Only field
// and index steps address data; branch and member steps are skipped.
func (c Context) Pointer() string {
	var b strings.Builder
	for _, e := range c {
		if e.Kind != KeyField && e.Kind != KeyIndex {
			continue
		}
		b.WriteByte('/')
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(e.Key, "~", "~0"), "/", "~1"))
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}
