// Package numeric registers github.com/shopspring/decimal with the ozo type
// table.
//
// Importing this package for side effects maps decimal.Decimal (and
// decimal.NullDecimal) to the PostgreSQL numeric type:
//
//	import _ "github.com/IlyaSidorov/ozo/ext/shopspring-numeric"
package numeric

import (
	"github.com/shopspring/decimal"

	"github.com/IlyaSidorov/ozo"
)

func init() {
	ozo.RegisterTypeAndArray[decimal.Decimal]("numeric", ozo.NumericOID, ozo.NumericArrayOID, ozo.DynamicSize)

	// decimal's own nullable wrapper does not implement ozo's protocol, so
	// transparency cannot resolve it; give it an explicit entry.
	ozo.RegisterType[decimal.NullDecimal]("numeric", ozo.NumericOID, ozo.DynamicSize)
}
