package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// ADX is one output of DirectionalMovementIndex. Each field warms up on its own
// schedule and marshals to null while pending.
type ADX struct {
	ADX     optional.Option[decimal.Decimal] `json:"adx"`
	DIPlus  optional.Option[decimal.Decimal] `json:"di_plus"`
	DIMinus optional.Option[decimal.Decimal] `json:"di_minus"`
}

// PendingADX returns a record with all three fields pending.
func PendingADX() ADX {
	return ADX{
		ADX:     optional.None[decimal.Decimal](),
		DIPlus:  optional.None[decimal.Decimal](),
		DIMinus: optional.None[decimal.Decimal](),
	}
}

// IsPending reports whether no field is available yet.
func (a ADX) IsPending() bool {
	return a.ADX.IsNone() && a.DIPlus.IsNone() && a.DIMinus.IsNone()
}
