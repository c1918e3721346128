package ozo

// OID (Object Identifier Type) is, according to
// https://www.postgresql.org/docs/current/static/datatype-oid.html, used
// internally by PostgreSQL as a primary key for various system tables. It is
// currently implemented as an unsigned four-byte integer. Its definition can
// be found in src/include/postgres_ext.h in the PostgreSQL sources.
//
// A type whose OID is fixed in the PostgreSQL catalog is a built-in type and
// its OID is one of the constants below. A type created in a particular
// database (enum, composite, domain) has no stable OID; such types use
// NullOID in their descriptor and are resolved through an OIDMap at session
// start.
type OID uint32

// NullOID marks a type whose OID is not known at build time.
const NullOID OID = 0

// PostgreSQL oids for common types
const (
	BoolOID             OID = 16
	ByteaOID            OID = 17
	QCharOID            OID = 18
	NameOID             OID = 19
	Int8OID             OID = 20
	Int2OID             OID = 21
	Int4OID             OID = 23
	TextOID             OID = 25
	OIDOID              OID = 26
	TIDOID              OID = 27
	XIDOID              OID = 28
	CIDOID              OID = 29
	JSONOID             OID = 114
	PointOID            OID = 600
	LsegOID             OID = 601
	PathOID             OID = 602
	BoxOID              OID = 603
	PolygonOID          OID = 604
	LineOID             OID = 628
	CIDROID             OID = 650
	CIDRArrayOID        OID = 651
	Float4OID           OID = 700
	Float8OID           OID = 701
	UnknownOID          OID = 705
	CircleOID           OID = 718
	MacaddrOID          OID = 829
	InetOID             OID = 869
	BoolArrayOID        OID = 1000
	ByteaArrayOID       OID = 1001
	QCharArrayOID       OID = 1002
	NameArrayOID        OID = 1003
	Int2ArrayOID        OID = 1005
	Int4ArrayOID        OID = 1007
	TextArrayOID        OID = 1009
	VarcharArrayOID     OID = 1015
	Int8ArrayOID        OID = 1016
	PointArrayOID       OID = 1017
	Float4ArrayOID      OID = 1021
	Float8ArrayOID      OID = 1022
	OIDArrayOID         OID = 1028
	ACLItemOID          OID = 1033
	ACLItemArrayOID     OID = 1034
	InetArrayOID        OID = 1041
	VarcharOID          OID = 1043
	DateOID             OID = 1082
	TimeOID             OID = 1083
	TimestampOID        OID = 1114
	TimestampArrayOID   OID = 1115
	DateArrayOID        OID = 1182
	TimestamptzOID      OID = 1184
	TimestamptzArrayOID OID = 1185
	IntervalOID         OID = 1186
	NumericArrayOID     OID = 1231
	BitOID              OID = 1560
	VarbitOID           OID = 1562
	NumericOID          OID = 1700
	RecordOID           OID = 2249
	UUIDOID             OID = 2950
	UUIDArrayOID        OID = 2951
	JSONBOID            OID = 3802
	JSONBArrayOID       OID = 3807
	Int4rangeOID        OID = 3904
	NumrangeOID         OID = 3906
	TsrangeOID          OID = 3908
	TstzrangeOID        OID = 3910
	DaterangeOID        OID = 3912
	Int8rangeOID        OID = 3926
)
