package ozo

import (
	"reflect"
	"sync/atomic"
)

// sharedBox is the control block behind Shared and Weak handles. The strong
// count only tracks logical ownership; memory is reclaimed by the garbage
// collector as usual.
type sharedBox[T any] struct {
	value  T
	strong atomic.Int64
}

// Shared is a shared-ownership nullable handle to a value. Copies made with
// Clone own the value together; when every owner has called Release, Weak
// handles to the value stop upgrading. The zero Shared is null.
type Shared[T any] struct {
	box *sharedBox[T]
}

// NewShared returns a strong handle owning v.
func NewShared[T any](v T) Shared[T] {
	b := &sharedBox[T]{value: v}
	b.strong.Store(1)
	return Shared[T]{box: b}
}

func (s Shared[T]) Null() bool {
	return s.box == nil
}

func (s Shared[T]) Unwrap() any {
	return &s.box.value
}

// Get returns a pointer to the owned value, or nil for a null handle.
func (s Shared[T]) Get() *T {
	if s.box == nil {
		return nil
	}
	return &s.box.value
}

// Clone returns an additional strong handle to the same value.
func (s Shared[T]) Clone() Shared[T] {
	if s.box != nil {
		s.box.strong.Add(1)
	}
	return s
}

// Release gives up ownership and leaves the handle null. When the last owner
// releases, outstanding Weak handles degrade to null.
func (s *Shared[T]) Release() {
	if s.box != nil {
		s.box.strong.Add(-1)
		s.box = nil
	}
}

func (s *Shared[T]) Reset() {
	s.Release()
}

// Allocate constructs a new owned zero value with the given allocator,
// replacing whatever the handle owned before.
func (s *Shared[T]) Allocate(a Allocator) {
	s.Release()
	b := a.New(typeOf[sharedBox[T]]()).Interface().(*sharedBox[T])
	b.strong.Store(1)
	s.box = b
}

// Downgrade returns a non-owning Weak handle to the value.
func (s Shared[T]) Downgrade() Weak[T] {
	return Weak[T]{box: s.box}
}

// WrappedType makes descriptor lookup transparent to Shared wrapping.
func (Shared[T]) WrappedType() reflect.Type {
	return typeOf[T]()
}

// Weak is a non-owning nullable handle. It must be upgraded to a strong
// handle before use; once every strong owner has released the value, Upgrade
// fails and the handle reports null. The zero Weak is null.
type Weak[T any] struct {
	box *sharedBox[T]
}

// Upgrade attempts to obtain a strong handle. It fails when the handle is
// null or the referent has no strong owners left. The caller releases the
// returned handle when done with it.
func (w Weak[T]) Upgrade() (Shared[T], bool) {
	if w.box == nil {
		return Shared[T]{}, false
	}
	for {
		n := w.box.strong.Load()
		if n <= 0 {
			return Shared[T]{}, false
		}
		if w.box.strong.CompareAndSwap(n, n+1) {
			return Shared[T]{box: w.box}, true
		}
	}
}

// Null reports whether the referent is gone. A dead referent degrades to
// null; Null never panics.
func (w Weak[T]) Null() bool {
	s, ok := w.Upgrade()
	if ok {
		s.Release()
	}
	return !ok
}

// Unwrap upgrades to a temporary strong handle and returns a pointer to the
// value. The pointer's validity is tied to that temporary; callers must not
// retain it past the call.
func (w Weak[T]) Unwrap() any {
	s, ok := w.Upgrade()
	if !ok {
		return (*T)(nil)
	}
	p := &s.box.value
	s.Release()
	return p
}

func (w *Weak[T]) Reset() {
	w.box = nil
}

// WrappedType makes descriptor lookup transparent to Weak wrapping.
func (Weak[T]) WrappedType() reflect.Type {
	return typeOf[T]()
}
