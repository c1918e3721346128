package ozo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlyaSidorov/ozo"
)

func TestDescriptorOfBuiltIns(t *testing.T) {
	tests := []struct {
		desc *ozo.TypeDescriptor
		name string
		oid  ozo.OID
		size ozo.SizeClass
	}{
		{ozo.DescriptorOf[bool](), "bool", ozo.BoolOID, 1},
		{ozo.DescriptorOf[ozo.QChar](), "char", ozo.QCharOID, 1},
		{ozo.DescriptorOf[[]byte](), "bytea", ozo.ByteaOID, ozo.DynamicSize},
		{ozo.DescriptorOf[int16](), "int2", ozo.Int2OID, 2},
		{ozo.DescriptorOf[int32](), "int4", ozo.Int4OID, 4},
		{ozo.DescriptorOf[int64](), "int8", ozo.Int8OID, 8},
		{ozo.DescriptorOf[ozo.OID](), "oid", ozo.OIDOID, 4},
		{ozo.DescriptorOf[float32](), "float4", ozo.Float4OID, 4},
		{ozo.DescriptorOf[float64](), "float8", ozo.Float8OID, 8},
		{ozo.DescriptorOf[string](), "text", ozo.TextOID, ozo.DynamicSize},
		{ozo.DescriptorOf[ozo.Name](), "name", ozo.NameOID, ozo.DynamicSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.desc.Name)
			require.Equal(t, tt.oid, tt.desc.OID)
			require.Equal(t, tt.size, tt.desc.Size)
			require.True(t, tt.desc.BuiltIn())
		})
	}
}

func TestIsBuiltIn(t *testing.T) {
	assert.True(t, ozo.IsBuiltIn[int32]())
	assert.True(t, ozo.IsBuiltIn[[]int32]())
	assert.True(t, ozo.IsBuiltIn[ozo.Optional[int32]]())
	assert.False(t, ozo.IsBuiltIn[Ltree]())
	assert.False(t, ozo.IsBuiltIn[[]Ltree]())
	assert.False(t, ozo.IsBuiltIn[struct{ unregistered int }]())
}

type unregistered struct {
	x int
}

func TestDescriptorOfUnregisteredPanics(t *testing.T) {
	require.PanicsWithValue(t,
		"ozo: no type descriptor registered for ozo_test.unregistered",
		func() { ozo.DescriptorOf[unregistered]() })
}

func TestDescriptorForType(t *testing.T) {
	_, ok := ozo.DescriptorForValue(unregistered{})
	require.False(t, ok)

	desc, ok := ozo.DescriptorForValue(int64(0))
	require.True(t, ok)
	assert.Equal(t, "int8", desc.Name)

	// Transparency sees through any depth of wrapping.
	deep, ok := ozo.DescriptorForValue(&ozo.Optional[*int64]{})
	require.True(t, ok)
	assert.Same(t, desc, deep)
}

func TestDescriptorForName(t *testing.T) {
	desc, ok := ozo.DescriptorForName("int4")
	require.True(t, ok)
	assert.Same(t, ozo.DescriptorOf[int32](), desc)

	desc, ok = ozo.DescriptorForName("int4[]")
	require.True(t, ok)
	assert.Same(t, ozo.DescriptorOf[[]int32](), desc)

	_, ok = ozo.DescriptorForName("no.such.type")
	require.False(t, ok)
}

func TestDescriptorForOID(t *testing.T) {
	desc, ok := ozo.DescriptorForOID(ozo.TextOID)
	require.True(t, ok)
	assert.Equal(t, "text", desc.Name)

	desc, ok = ozo.DescriptorForOID(ozo.TextArrayOID)
	require.True(t, ok)
	assert.Equal(t, "text[]", desc.Name)

	// Custom types have no OID to look up under.
	_, ok = ozo.DescriptorForOID(ozo.NullOID)
	require.False(t, ok)
}

func TestSizeClassString(t *testing.T) {
	assert.Equal(t, "dynamic", ozo.DynamicSize.String())
	assert.Equal(t, "8 bytes", ozo.SizeClass(8).String())
}
