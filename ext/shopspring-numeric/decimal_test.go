package numeric_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlyaSidorov/ozo"
	_ "github.com/IlyaSidorov/ozo/ext/shopspring-numeric"
)

func TestDecimalRegistered(t *testing.T) {
	desc := ozo.DescriptorOf[decimal.Decimal]()
	assert.Equal(t, "numeric", desc.Name)
	assert.Equal(t, ozo.NumericOID, desc.OID)
	assert.True(t, desc.Size.Dynamic())
	assert.True(t, ozo.IsBuiltIn[decimal.Decimal]())

	array := ozo.DescriptorOf[[]decimal.Decimal]()
	assert.Equal(t, "numeric[]", array.Name)
	assert.Equal(t, ozo.NumericArrayOID, array.OID)

	null := ozo.DescriptorOf[decimal.NullDecimal]()
	assert.Equal(t, "numeric", null.Name)
	assert.Equal(t, ozo.NumericOID, null.OID)
}

func TestDecimalByteLengthUnsupported(t *testing.T) {
	// numeric is dynamically sized but not countable; its encoded length is
	// the encoder's business.
	_, err := ozo.SizeOf(decimal.New(1234, -2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numeric")
}
