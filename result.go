package runtype

// Result is the outcome of a decode call: either a non-empty, ordered Errors
// value or exactly one value of type T.
type Result[T any] struct {
	value T
	errs  Errors
}

// Success wraps a decoded value.
func Success[T any](v T) Result[T] { return Result[T]{value: v} }

// Failures wraps one or more errors. It panics when errs is empty because a
// failure without errors cannot be told apart from a success.
func Failures[T any](errs Errors) Result[T] {
	if len(errs) == 0 {
		panic("runtype: Failures requires at least one error")
	}
	return Result[T]{errs: errs}
}

// Fail reports v as an invalid value for the codec at the deepest entry of c.
func Fail[T any](v any, c Context) Result[T] {
	return FailCode[T](CodeInvalidType, v, c, "")
}

// FailWith is like Fail but attaches a custom message.
func FailWith[T any](v any, c Context, msg string) Result[T] {
	return FailCode[T](CodeCustom, v, c, msg)
}

// FailCode builds a single-error failure with an explicit code.
func FailCode[T any](code string, v any, c Context, msg string) Result[T] {
	return Result[T]{errs: Errors{{Value: v, Context: c, Message: msg, Code: code}}}
}

// IsSuccess reports whether r carries a value.
func (r Result[T]) IsSuccess() bool { return len(r.errs) == 0 }

// IsFailure reports whether r carries errors.
func (r Result[T]) IsFailure() bool { return len(r.errs) > 0 }

// Value returns the decoded value and true on success.
func (r Result[T]) Value() (T, bool) {
	if len(r.errs) > 0 {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Errors returns the accumulated errors (nil on success).
func (r Result[T]) Errors() Errors { return r.errs }

// Unwrap converts r into the (value, error) pair used across Go APIs. The
// error is an Errors value on failure.
func (r Result[T]) Unwrap() (T, error) {
	if len(r.errs) > 0 {
		var zero T
		return zero, r.errs
	}
	return r.value, nil
}

// Erase drops the static type of the value.
func (r Result[T]) Erase() Result[any] {
	if len(r.errs) > 0 {
		return Result[any]{errs: r.errs}
	}
	return Result[any]{value: r.value}
}

// Map transforms a successful value; failures pass through untouched.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if len(r.errs) > 0 {
		return Result[B]{errs: r.errs}
	}
	return Success(f(r.value))
}

// Chain sequences a dependent step after a successful value. It short-circuits
// on the first failure.
func Chain[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if len(r.errs) > 0 {
		return Result[B]{errs: r.errs}
	}
	return f(r.value)
}

// MapErrors transforms the errors of a failure; successes pass through. f must
// return at least one error.
func MapErrors[T any](r Result[T], f func(Errors) Errors) Result[T] {
	if len(r.errs) == 0 {
		return r
	}
	return Failures[T](f(r.errs))
}

// Alt returns r when it succeeded, otherwise the result of next. Errors of
// both attempts are concatenated when next fails too.
func Alt[T any](r Result[T], next func() Result[T]) Result[T] {
	if len(r.errs) == 0 {
		return r
	}
	n := next()
	if len(n.errs) == 0 {
		return n
	}
	errs := AppendErrors(nil, r.errs...)
	return Result[T]{errs: AppendErrors(errs, n.errs...)}
}

// Fold deconstructs r into one of its two branches.
func Fold[T, R any](r Result[T], onFailure func(Errors) R, onSuccess func(T) R) R {
	if len(r.errs) > 0 {
		return onFailure(r.errs)
	}
	return onSuccess(r.value)
}
