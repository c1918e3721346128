package ozo

// QChar maps to the PostgreSQL single-byte internal type "char" (not
// character(1), which is bpchar). It is a distinct Go type so that []byte can
// keep its natural bytea mapping.
type QChar byte

// Name maps to the PostgreSQL "name" type, the 63-byte identifier type used
// by the system catalogs.
type Name string

func init() {
	RegisterTypeAndArray[bool]("bool", BoolOID, BoolArrayOID, 1)
	RegisterTypeAndArray[QChar]("char", QCharOID, QCharArrayOID, 1)
	RegisterTypeAndArray[[]byte]("bytea", ByteaOID, ByteaArrayOID, DynamicSize)

	RegisterTypeAndArray[int16]("int2", Int2OID, Int2ArrayOID, 2)
	RegisterTypeAndArray[int32]("int4", Int4OID, Int4ArrayOID, 4)
	RegisterTypeAndArray[int64]("int8", Int8OID, Int8ArrayOID, 8)

	RegisterTypeAndArray[OID]("oid", OIDOID, OIDArrayOID, 4)

	RegisterTypeAndArray[float32]("float4", Float4OID, Float4ArrayOID, 4)
	RegisterTypeAndArray[float64]("float8", Float8OID, Float8ArrayOID, 8)

	RegisterTypeAndArray[string]("text", TextOID, TextArrayOID, DynamicSize)
	RegisterTypeAndArray[Name]("name", NameOID, NameArrayOID, DynamicSize)
}
