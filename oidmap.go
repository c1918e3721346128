package ozo

import (
	"fmt"
	"reflect"
)

// OIDMap maps Go types to the OIDs a particular database assigned to their
// PostgreSQL types. Built-in types never appear in a map: their OIDs are
// catalog constants and TypeOID answers for them without consulting the map
// at all.
//
// A map is populated once at session start, by RegisterTypes and SetTypeOID,
// typically from a pg_type query. Population is single-writer; afterwards the
// map is read-only and may be shared by any number of concurrent readers
// without locking.
type OIDMap struct {
	oids map[reflect.Type]OID
}

// RegisterTypes returns an OIDMap pre-populated with unresolved entries for
// the types of the given prototype values. Passing a built-in type is a usage
// error and panics. With no arguments it returns an empty map.
//
//	m := ozo.RegisterTypes(Ltree(""), Composite{})
func RegisterTypes(prototypes ...any) *OIDMap {
	m := &OIDMap{oids: make(map[reflect.Type]OID, len(prototypes))}
	for _, p := range prototypes {
		t := mapKey(reflect.TypeOf(p))
		if builtInType(t) {
			panic(fmt.Sprintf("ozo: cannot register built-in type %s in an OIDMap", t))
		}
		m.oids[t] = NullOID
	}
	return m
}

// SetTypeOID stores the database-assigned OID for T. T must not be built-in;
// that is a usage error and panics. SetTypeOID is part of map population and
// must not race with readers.
func SetTypeOID[T any](m *OIDMap, oid OID) {
	t := mapKey(typeOf[T]())
	if builtInType(t) {
		panic(fmt.Sprintf("ozo: cannot set OID for built-in type %s", t))
	}
	m.oids[t] = oid
}

// TypeOID returns the OID for T. For a built-in type it is the catalog
// constant from the type's descriptor and the map is not consulted (a nil map
// works). For any other type it is the stored OID, or NullOID when none has
// been set; deciding what an unresolved OID means is up to the caller.
func TypeOID[T any](m *OIDMap) OID {
	return typeOIDForType(m, typeOf[T]())
}

// TypeOIDOf is TypeOID for a value's dynamic type.
func TypeOIDOf(m *OIDMap, v any) OID {
	if v == nil {
		return NullOID
	}
	return typeOIDForType(m, reflect.TypeOf(v))
}

// AcceptsOID reports whether a column or parameter with the given OID can be
// decoded into T.
func AcceptsOID[T any](m *OIDMap, oid OID) bool {
	return TypeOID[T](m) == oid
}

// IsEmpty reports whether no types were registered.
func (m *OIDMap) IsEmpty() bool {
	return m == nil || len(m.oids) == 0
}

func typeOIDForType(m *OIDMap, t reflect.Type) OID {
	t = mapKey(t)
	if desc, ok := DescriptorForType(t); ok && desc.BuiltIn() {
		return desc.OID
	}
	if m == nil {
		return NullOID
	}
	return m.oids[t]
}

// mapKey strips nullable wrapping so that Optional[T], *T and T share one
// entry.
func mapKey(t reflect.Type) reflect.Type {
	for {
		inner, unwrapped := unwrapType(t)
		if !unwrapped {
			return t
		}
		t = inner
	}
}

func builtInType(t reflect.Type) bool {
	desc, ok := DescriptorForType(t)
	return ok && desc.BuiltIn()
}
