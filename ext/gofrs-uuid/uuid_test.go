package uuid_test

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlyaSidorov/ozo"
	_ "github.com/IlyaSidorov/ozo/ext/gofrs-uuid"
)

func TestUUIDRegistered(t *testing.T) {
	desc := ozo.DescriptorOf[uuid.UUID]()
	assert.Equal(t, "uuid", desc.Name)
	assert.Equal(t, ozo.UUIDOID, desc.OID)
	assert.Equal(t, ozo.SizeClass(16), desc.Size)
	assert.True(t, ozo.IsBuiltIn[uuid.UUID]())

	array := ozo.DescriptorOf[[]uuid.UUID]()
	assert.Equal(t, "uuid[]", array.Name)
	assert.Equal(t, ozo.UUIDArrayOID, array.OID)
}

func TestUUIDSize(t *testing.T) {
	u := uuid.Must(uuid.FromString("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))

	n, err := ozo.SizeOf(u)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	n, err = ozo.SizeOf([]uuid.UUID{u, u, u})
	require.NoError(t, err)
	assert.Equal(t, 48, n)
}

func TestUUIDOIDFromDescriptor(t *testing.T) {
	assert.Equal(t, ozo.UUIDOID, ozo.TypeOID[uuid.UUID](nil))
	assert.Equal(t, ozo.UUIDOID, ozo.TypeOID[ozo.Optional[uuid.UUID]](nil))
}
