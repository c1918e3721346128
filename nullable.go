package ozo

import (
	"fmt"
	"reflect"
)

// Nullable is the interface a wrapper type implements to represent the SQL
// NULL state. Optional, Shared, Weak and plain pointers are nullable out of
// the box; an application wrapper becomes nullable by implementing Nullable
// (and Allocatable, if a value can be constructed in place) without any
// change to the existing wrappers.
//
// The free functions IsNull, Unwrap, InitNullable and ResetNullable accept
// the wrapper's address (e.g. *Optional[T]); for a plain pointer wrapper *T
// the query functions take the pointer itself and the mutating functions take
// its address (**T).
type Nullable interface {
	// Null reports whether the wrapper holds no value. For a Weak handle
	// this attempts an upgrade to a strong handle and reports true when the
	// referent is gone; it never panics.
	Null() bool

	// Unwrap returns a pointer to the contained value. Unwrap on a null
	// wrapper is undefined; call Null first. For a Weak handle the returned
	// pointer is obtained through a temporary strong handle and must not be
	// retained past the call.
	Unwrap() any

	// Reset returns the wrapper to the null state unconditionally.
	Reset()
}

// Allocatable is implemented by nullable wrappers that can construct a fresh
// contained value. Weak is Nullable but not Allocatable: a non-owning handle
// cannot create a referent.
type Allocatable interface {
	Nullable
	Allocate(a Allocator)
}

// Allocator is the allocation strategy used when a nullable wrapper
// constructs a new contained value. DefaultAllocator allocates from the heap;
// an application may supply a pooled or arena strategy instead.
type Allocator interface {
	// New returns a pointer to a newly allocated zero value of t, as
	// reflect.New does.
	New(t reflect.Type) reflect.Value
}

type heapAllocator struct{}

func (heapAllocator) New(t reflect.Type) reflect.Value {
	return reflect.New(t)
}

// DefaultAllocator allocates contained values from the heap.
var DefaultAllocator Allocator = heapAllocator{}

var nullableType = reflect.TypeOf((*Nullable)(nil)).Elem()

// IsNullable reports whether T is a nullable wrapper type: a pointer, one of
// the wrappers provided here, or a type whose pointer implements Nullable.
func IsNullable[T any]() bool {
	t := typeOf[T]()
	if t.Kind() == reflect.Ptr || t.Implements(wrappedTyperType) {
		return true
	}
	return reflect.PtrTo(t).Implements(nullableType)
}

// IsNull reports whether v is an absent nullable. Values of non-nullable
// types are never null; no wrapper logic runs for them.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if n, ok := v.(interface{ Null() bool }); ok {
		return n.Null()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return false
	}
	if rv.IsNil() {
		return true
	}
	// Mutating callers hold the wrapper's address; see through it so the
	// same argument works for every function in the protocol.
	if rv.Elem().Kind() == reflect.Ptr {
		return rv.Elem().IsNil()
	}
	return false
}

// Unwrap returns a pointer to the value contained in a nullable wrapper. A
// plain pointer is already that pointer and is returned as is (after one
// dereference when the pointer's address was passed). A value of a
// non-nullable type passes through unchanged.
//
// Unwrap on a null wrapper is undefined; call IsNull first.
func Unwrap(v any) any {
	if n, ok := v.(interface{ Unwrap() any }); ok {
		return n.Unwrap()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() == reflect.Ptr {
		return rv.Elem().Interface()
	}
	return v
}

// InitNullable ensures the nullable wrapper addressed by v holds a value,
// constructing one with the given allocator when it is null. It is idempotent
// and leaves a present wrapper untouched. A nil allocator means
// DefaultAllocator.
//
// v must address an allocatable wrapper: *Optional[T], *Shared[T] or **T.
// InitNullable panics for anything else, including *Weak[T].
func InitNullable(v any, a Allocator) {
	if a == nil {
		a = DefaultAllocator
	}
	if n, ok := v.(Allocatable); ok {
		if n.Null() {
			n.Allocate(a)
		}
		return
	}
	if pp, ok := pointerToPointer(v); ok {
		if pp.IsNil() {
			pp.Set(a.New(pp.Type().Elem()))
		}
		return
	}
	panic(fmt.Sprintf("ozo: cannot allocate %T", v))
}

// ResetNullable returns the nullable wrapper addressed by v to the null
// state. v must address a nullable wrapper: *Optional[T], *Shared[T],
// *Weak[T] or **T.
func ResetNullable(v any) {
	if n, ok := v.(Nullable); ok {
		n.Reset()
		return
	}
	if pp, ok := pointerToPointer(v); ok {
		pp.Set(reflect.Zero(pp.Type()))
		return
	}
	panic(fmt.Sprintf("ozo: cannot reset %T", v))
}

// pointerToPointer returns the settable *T addressed by a **T argument.
func pointerToPointer(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Ptr {
		return reflect.Value{}, false
	}
	return rv.Elem(), true
}
