// Package uuid registers github.com/gofrs/uuid with the ozo type table.
//
// Importing this package for side effects maps uuid.UUID to the PostgreSQL
// uuid type:
//
//	import _ "github.com/IlyaSidorov/ozo/ext/gofrs-uuid"
package uuid

import (
	"github.com/gofrs/uuid"

	"github.com/IlyaSidorov/ozo"
)

func init() {
	ozo.RegisterTypeAndArray[uuid.UUID]("uuid", ozo.UUIDOID, ozo.UUIDArrayOID, 16)
}
