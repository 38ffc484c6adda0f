// Package rawvalue decodes transport payloads into JSON-like values:
// map[string]any, []any and scalars.
package rawvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrTrailingData is returned when a JSON payload holds more than one value.
var ErrTrailingData = errors.New("rawvalue: trailing data after top-level value")

// JSON decodes a single JSON document. Numbers become float64.
func JSON(data []byte) (any, error) {
	return JSONReader(bytes.NewReader(data))
}

// JSONReader decodes a single JSON document from r. Anything but whitespace
// after the document fails with ErrTrailingData.
func JSONReader(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return v, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrTrailingData, err)
	default:
		return nil, ErrTrailingData
	}
}

// YAML decodes the first document of a YAML stream.
func YAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return Normalize(v), nil
}

// TOML decodes a TOML document; the root is always a table.
func TOML(data []byte) (any, error) {
	var m map[string]any
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return nil, err
	}
	return Normalize(m), nil
}

// Msgpack decodes a MessagePack value.
func Msgpack(data []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return Normalize(v), nil
}

var cborDec = mustCBORDecMode()

func mustCBORDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{DefaultMapType: reflect.TypeOf(map[string]any(nil))}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// CBOR decodes a CBOR data item.
func CBOR(data []byte) (any, error) {
	var v any
	if err := cborDec.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return Normalize(v), nil
}

// Normalize converts decoder-specific containers (map[any]any, typed slices of
// maps) into map[string]any and []any recursively. Scalars are returned as-is.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = Normalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = Normalize(vv)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = Normalize(vv)
		}
		return out
	default:
		return v
	}
}
