package ozo

import "reflect"

// Optional is a value-semantic nullable wrapper: the contained value lives
// inline and Valid reports whether it is present, the same shape the driver's
// scan targets use. The zero Optional is null.
type Optional[T any] struct {
	Value T
	Valid bool
}

// NewOptional returns a present Optional containing v.
func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// Get returns the contained value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

func (o *Optional[T]) Null() bool {
	return !o.Valid
}

func (o *Optional[T]) Unwrap() any {
	return &o.Value
}

func (o *Optional[T]) Reset() {
	*o = Optional[T]{}
}

// Allocate constructs a zero value in place. The value is inline, so the
// allocation strategy does not apply here.
func (o *Optional[T]) Allocate(Allocator) {
	*o = Optional[T]{Valid: true}
}

// WrappedType makes descriptor lookup transparent to Optional wrapping.
func (Optional[T]) WrappedType() reflect.Type {
	return typeOf[T]()
}
