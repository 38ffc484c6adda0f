// Package middleware carries decoded values and failure payloads across
// request boundaries without tying runtype to an HTTP framework.
package middleware

import (
	"context"

	"github.com/reoring/runtype"
	"github.com/reoring/runtype/reporter"
)

// ctxKeyDecoded is a typed context key for storing decoded values.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyDecoded[T any] struct{}

// ContextWithDecoded attaches a decoded value to the context.
func ContextWithDecoded[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyDecoded[T]{}, v)
}

// DecodedFromContext retrieves a value stored by ContextWithDecoded.
func DecodedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyDecoded[T]{}).(T)
	return v, ok
}

// Decode reads src with c and, on success, returns ctx carrying the value.
// On failure ctx is returned unchanged together with the runtype.Errors.
func Decode[O, I any](ctx context.Context, c runtype.Codec[O, I], src runtype.Source) (context.Context, error) {
	v, err := runtype.DecodeFrom(c, src).Unwrap()
	if err != nil {
		return ctx, err
	}
	return ContextWithDecoded(ctx, v), nil
}

// ErrorPayload shapes errors for JSON responses: {"issues": [...]}.
func ErrorPayload(errs runtype.Errors) map[string]any {
	return map[string]any{"issues": reporter.New().Issues(errs)}
}
