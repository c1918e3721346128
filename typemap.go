package ozo

import (
	"fmt"
	"reflect"
)

// SizeClass classifies the encoded length of a type. A non-negative value is
// the exact byte length of every value of the type; DynamicSize means the
// length depends on the value.
type SizeClass int

// DynamicSize is the SizeClass of variable-length types such as text, bytea
// and all array types.
const DynamicSize SizeClass = -1

// Dynamic reports whether the size class is value-dependent.
func (s SizeClass) Dynamic() bool {
	return s < 0
}

func (s SizeClass) String() string {
	if s.Dynamic() {
		return "dynamic"
	}
	return fmt.Sprintf("%d bytes", int(s))
}

// TypeDescriptor is the static metadata binding a Go type to a PostgreSQL
// type: the fully qualified type name in the database, the catalog OID
// (NullOID for types whose OID is assigned per database), and the size class.
//
// Descriptors are registered during package initialization, once per type,
// and are immutable afterwards.
type TypeDescriptor struct {
	Name string
	OID  OID
	Size SizeClass
}

// BuiltIn reports whether the described type has a fixed catalog OID.
func (d *TypeDescriptor) BuiltIn() bool {
	return d.OID != NullOID
}

// wrappedTyper is implemented by nullable wrapper types so that descriptor
// lookup can see through them to the contained type.
type wrappedTyper interface {
	WrappedType() reflect.Type
}

var wrappedTyperType = reflect.TypeOf((*wrappedTyper)(nil)).Elem()

// The registry is populated from init functions only and is read without
// locks afterwards. Registering types after initialization while lookups run
// concurrently is not supported, the same single-writer-then-frozen contract
// an OIDMap has.
var (
	descriptorsByType = make(map[reflect.Type]*TypeDescriptor, 64)
	descriptorsByName = make(map[string]*TypeDescriptor, 64)
	descriptorsByOID  = make(map[OID]*TypeDescriptor, 64)
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// unwrapType strips one level of nullable wrapping: a pointer type resolves
// to its element type and a wrapper implementing wrappedTyper resolves to the
// wrapped type. The second return value reports whether anything was
// stripped.
func unwrapType(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() == reflect.Ptr {
		return t.Elem(), true
	}
	if t.Implements(wrappedTyperType) {
		return reflect.Zero(t).Interface().(wrappedTyper).WrappedType(), true
	}
	return t, false
}

func registerDescriptor(t reflect.Type, desc *TypeDescriptor) {
	if existing, ok := descriptorsByType[t]; ok {
		if existing == desc {
			return
		}
		panic(fmt.Sprintf("ozo: type descriptor already registered for %s", t))
	}
	if !desc.Size.Dynamic() && int(t.Size()) != int(desc.Size) {
		panic(fmt.Sprintf("ozo: size of %s (%d bytes) does not match declared size of %s (%s)",
			t, t.Size(), desc.Name, desc.Size))
	}
	descriptorsByType[t] = desc
	descriptorsByName[desc.Name] = desc
	if desc.OID != NullOID {
		descriptorsByOID[desc.OID] = desc
	}
}

// DescriptorForType returns the descriptor registered for t. Nullability is
// transparent: if t itself has no descriptor but is a pointer or a nullable
// wrapper, the contained type's descriptor is returned.
func DescriptorForType(t reflect.Type) (*TypeDescriptor, bool) {
	for {
		if desc, ok := descriptorsByType[t]; ok {
			return desc, true
		}
		inner, unwrapped := unwrapType(t)
		if !unwrapped {
			return nil, false
		}
		t = inner
	}
}

// DescriptorOf returns the descriptor registered for T. It panics if no
// descriptor is registered; an unregistered type is a programmer error, not a
// runtime condition, and surfaces on first use during initialization or
// testing.
func DescriptorOf[T any]() *TypeDescriptor {
	desc, ok := DescriptorForType(typeOf[T]())
	if !ok {
		panic(fmt.Sprintf("ozo: no type descriptor registered for %s", typeOf[T]()))
	}
	return desc
}

// DescriptorForValue returns the descriptor for v's dynamic type.
func DescriptorForValue(v any) (*TypeDescriptor, bool) {
	if v == nil {
		return nil, false
	}
	return DescriptorForType(reflect.TypeOf(v))
}

// DescriptorForName returns the descriptor registered under the given
// database type name, e.g. "int4" or "text[]".
func DescriptorForName(name string) (*TypeDescriptor, bool) {
	desc, ok := descriptorsByName[name]
	return desc, ok
}

// DescriptorForOID returns the descriptor of the built-in type with the given
// OID.
func DescriptorForOID(oid OID) (*TypeDescriptor, bool) {
	desc, ok := descriptorsByOID[oid]
	return desc, ok
}

// IsBuiltIn reports whether T maps to a type with a fixed catalog OID.
// Unregistered types report false.
func IsBuiltIn[T any]() bool {
	desc, ok := DescriptorForType(typeOf[T]())
	return ok && desc.BuiltIn()
}
