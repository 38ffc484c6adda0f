// Package runtype provides:
//
// - Codecs: named, bidirectional transformations from untyped input to typed values (Decode/Is/Encode)
// - A two-variant Result carrying either a value or ordered, path-annotated Errors
// - A Context trail describing where inside a composite value a check failed
// - Sources that turn JSON/YAML/TOML/MessagePack/CBOR payloads into decodable values
//
// Design policy:
// - Keep the core types in the root package; combinators live under dsl/, transforming codecs under
//   codec/, rendering of errors under reporter/ and the CLI under cmd/runtype.
// - Failures are values. Decode never panics on bad input; composite codecs accumulate sibling failures.
// - Codecs are immutable and safe for concurrent use.
//
// Typical usage:
//
//	person := dsl.Object("Person").
//	    Field("name", dsl.String()).
//	    Field("age", dsl.Integer()).
//	    MustBuild()
//
//	res := runtype.DecodeFrom(person, runtype.JSONBytes(data))
//	if res.IsFailure() {
//	    for _, msg := range reporter.Report(res) {
//	        log.Println(msg)
//	    }
//	}
package runtype
