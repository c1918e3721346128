// Package ozo maps Go types to PostgreSQL types.
/*
ozo is the type system of a PostgreSQL driver: it answers what database type a
Go type corresponds to, what that type's OID and encoded size are, and whether
a given value represents SQL NULL. It performs no I/O and defines no wire
format; the driver's encoder and decoder consume the metadata it provides.

Type Descriptors

Every Go type used as a query parameter or scan target has a TypeDescriptor
holding the database type name, the catalog OID and the size class. The common
PostgreSQL types are registered by this package and its ext subpackages.
Applications register their own types once, during initialization:

    func init() {
        ozo.RegisterTypeAndArray[Ltree]("public.ltree", ozo.NullOID, ozo.NullOID, ozo.DynamicSize)
    }

One call registers the whole family: the type, its array form, and array
forms with nullable elements. Descriptor lookup sees through nullable
wrappers, so DescriptorOf[ozo.Optional[int32]]() is DescriptorOf[int32]().

Misdeclarations are caught when registration runs: declaring a fixed size that
disagrees with the type's in-memory size, registering a type twice, or looking
up a type that was never registered all panic rather than corrupt data later.
Since registration happens in init functions, these surface at process start.

OID Resolution

Types like enums and composites have no catalog OID; each database assigns
its own. An OIDMap carries those assignments for a session. It is populated
once at session start from the database's pg_type catalog and is read-only
afterwards. TypeOID resolves built-in types from their descriptors without
touching the map, so the common path costs nothing.

NULL Handling

A value is nullable when wrapped: Optional[T] stores the value inline with a
validity flag, a plain *T is null when nil, Shared[T] is a shared-ownership
handle, and Weak[T] is a non-owning handle that degrades to null once the
value's owners release it. IsNull, Unwrap, InitNullable and ResetNullable
operate uniformly over all of them, and over application-defined wrappers
that implement Nullable.
*/
package ozo
