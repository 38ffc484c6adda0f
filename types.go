package runtype

// UnknownPolicy controls how object shapes handle keys they do not declare.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                           // Reject unknown keys with an error (exact shape).
	UnknownPassthrough                      // Preserve unknown keys in the output.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrict:
		return "strict"
	case UnknownPassthrough:
		return "passthrough"
	default:
		return "strip"
	}
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks an absent value, e.g. a declared object key missing from the
// input. nil stands for an explicit null.
var Undefined any = undefined{}

// IsAbsent reports whether v is nil or Undefined.
func IsAbsent(v any) bool { return v == nil || v == Undefined }
