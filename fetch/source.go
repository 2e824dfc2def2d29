package fetch

// Source is a value that is either fixed or produced by a provider func at
// call time. Providers run exactly once per request, including each Refetch,
// so refetches observe fresh dynamic inputs. The zero Source resolves to the
// zero value of T.
type Source[T any] struct {
	v  T
	fn func() T
}

// Value wraps a fixed value.
func Value[T any](v T) Source[T] {
	return Source[T]{v: v}
}

// By defers resolution to call time.
func By[T any](fn func() T) Source[T] {
	return Source[T]{fn: fn}
}

// Resolve returns the fixed value or the provider's result.
func (s Source[T]) Resolve() T {
	if s.fn != nil {
		return s.fn()
	}
	return s.v
}
