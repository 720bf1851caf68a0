// Package optional provides a small generic Option type used to model values
// that may be absent, such as the UTC offset of a schema-style date-time.
//
// Modeling absence as an explicit sum type instead of a nil pointer forces
// every call site to handle both branches:
//
//	off := optional.Some(civil.UTC)
//	if v, ok := off.Get(); ok {
//	    // offset present
//	}
package optional

// Option represents a value of type T that may or may not be present.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr creates an Option from a pointer, mapping nil to None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the contained value or panics if empty.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("optional: called MustGet on None")
	}
	return o.value
}

// OrElse returns the contained value or a default.
func (o Option[T]) OrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// OrElseGet returns the contained value or computes a default.
func (o Option[T]) OrElseGet(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// ToPtr converts the Option to a pointer, mapping None to nil.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// Map applies a transformation function to the contained value if present.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// Equal reports whether two Options have the same present/absent state and,
// when both are present, equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	if !a.present {
		return true
	}
	return a.value == b.value
}
