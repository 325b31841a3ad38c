package types

// Field is an explicit optional value used in patch types. The zero Field is
// absent; a Field built with Set is present even when it holds the zero value
// of T. This is what lets an update distinguish "leave the column alone" from
// "clear the column".
type Field[T any] struct {
	value T
	set   bool
}

// Set returns a present Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Get returns the held value and whether the field is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// IsSet reports whether the field is present.
func (f Field[T]) IsSet() bool {
	return f.set
}
