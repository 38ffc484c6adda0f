package runtype

import (
	"io"

	"github.com/reoring/runtype/internal/rawvalue"
)

// Source abstracts over transport payloads that yield one untyped value.
type Source interface {
	// Raw decodes the payload into a JSON-like value.
	Raw() (any, error)
	// Format names the payload encoding, e.g. "json".
	Format() string
}

type funcSource struct {
	format string
	raw    func() (any, error)
}

func (s funcSource) Raw() (any, error) { return s.raw() }
func (s funcSource) Format() string    { return s.format }

// JSONBytes wraps a JSON document.
func JSONBytes(b []byte) Source {
	return funcSource{format: "json", raw: func() (any, error) { return rawvalue.JSON(b) }}
}

// JSONReader wraps a reader producing one JSON document.
func JSONReader(r io.Reader) Source {
	return funcSource{format: "json", raw: func() (any, error) { return rawvalue.JSONReader(r) }}
}

// YAMLBytes wraps a YAML document.
func YAMLBytes(b []byte) Source {
	return funcSource{format: "yaml", raw: func() (any, error) { return rawvalue.YAML(b) }}
}

// TOMLBytes wraps a TOML document.
func TOMLBytes(b []byte) Source {
	return funcSource{format: "toml", raw: func() (any, error) { return rawvalue.TOML(b) }}
}

// MsgpackBytes wraps a MessagePack payload.
func MsgpackBytes(b []byte) Source {
	return funcSource{format: "msgpack", raw: func() (any, error) { return rawvalue.Msgpack(b) }}
}

// CBORBytes wraps a CBOR payload.
func CBORBytes(b []byte) Source {
	return funcSource{format: "cbor", raw: func() (any, error) { return rawvalue.CBOR(b) }}
}

// Value wraps an already decoded value, e.g. form data collected by a caller.
func Value(v any) Source {
	return funcSource{format: "value", raw: func() (any, error) { return v, nil }}
}

// DecodeFrom reads the source and decodes its value with c. Payload errors are
// reported as a single parse_error at the root.
func DecodeFrom[O, I any](c Codec[O, I], src Source) Result[O] {
	v, err := src.Raw()
	if err != nil {
		return sourceFailure[O](c, src, err)
	}
	return c.Decode(v)
}

// DecodeAnyFrom is DecodeFrom for type-erased codecs.
func DecodeAnyFrom(c Mixed, src Source) Result[any] {
	v, err := src.Raw()
	if err != nil {
		return sourceFailure[any](c, src, err)
	}
	return DecodeAny(c, v)
}

func sourceFailure[T any](c Mixed, src Source, err error) Result[T] {
	return FailCode[T](CodeParseError, nil, Root(c.Name(), nil), src.Format()+": "+err.Error())
}
