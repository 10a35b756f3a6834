package types

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// IndicatorRow is the pipeline output for one bar. Values line up with the
// pipeline's columns; a pending value is None.
type IndicatorRow struct {
	Time   time.Time
	Symbol string
	Values []optional.Option[decimal.Decimal]
}

// Pending reports whether every value in the row is still pending.
func (r IndicatorRow) Pending() bool {
	for _, v := range r.Values {
		if v.IsSome() {
			return false
		}
	}

	return true
}
