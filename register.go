package ozo

// RegisterType registers a descriptor for T alone. For a built-in type pass
// the catalog OID; for a database-assigned type pass NullOID and resolve the
// OID through an OIDMap at session start.
//
// RegisterType must be called during package initialization, before any
// lookups run.
func RegisterType[T any](name string, oid OID, size SizeClass) {
	registerDescriptor(typeOf[T](), &TypeDescriptor{Name: name, OID: oid, Size: size})
}

// RegisterTypeAndArray registers the full descriptor family for T:
//
//   - T itself, under name with the given oid and size;
//   - []T, under name + "[]" with arrayOID, dynamically sized;
//   - []Optional[T], []*T and []Shared[T], sharing the []T descriptor so
//     arrays with null elements resolve to the same array type.
//
// Nullable wrappers of T and of []T themselves need no entries of their own:
// descriptor lookup is transparent to wrapping, so Optional[T], *T, Shared[T]
// and Optional[[]T] all resolve to the registered descriptors.
//
// For a type that only exists in a particular database pass NullOID for both
// identifiers. The family is still registered, name and size lookups work,
// and OID resolution routes through an OIDMap instead of the descriptor.
//
// This is the one registration call an application needs per type:
//
//	func init() {
//		ozo.RegisterTypeAndArray[Ltree]("public.ltree", ozo.NullOID, ozo.NullOID, ozo.DynamicSize)
//	}
func RegisterTypeAndArray[T any](name string, oid, arrayOID OID, size SizeClass) {
	RegisterType[T](name, oid, size)

	arrayDesc := &TypeDescriptor{Name: name + "[]", OID: arrayOID, Size: DynamicSize}
	registerDescriptor(typeOf[[]T](), arrayDesc)
	registerDescriptor(typeOf[[]Optional[T]](), arrayDesc)
	registerDescriptor(typeOf[[]*T](), arrayDesc)
	registerDescriptor(typeOf[[]Shared[T]](), arrayDesc)
}
