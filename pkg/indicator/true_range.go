package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// TrueRange is the largest of the bar's own range and its gaps to the previous close:
//
//	TR = max(high - low, |high - prevClose|, |low - prevClose|)
//
// The first bar has no previous close and yields high - low.
type TrueRange struct {
	prevClose optional.Option[decimal.Decimal]
}

// NewTrueRange creates a TrueRange with no previous close.
func NewTrueRange() *TrueRange {
	return &TrueRange{prevClose: optional.None[decimal.Decimal]()}
}

func (t *TrueRange) Next(bar HLC) decimal.Decimal {
	high, low := bar.GetHigh(), bar.GetLow()
	tr := high.Sub(low)

	if prev, err := t.prevClose.Take(); err == nil {
		tr = decimal.Max(tr, high.Sub(prev).Abs(), low.Sub(prev).Abs())
	}

	t.prevClose = optional.Some(bar.GetClose())

	return tr
}

func (t *TrueRange) Reset() {
	t.prevClose = optional.None[decimal.Decimal]()
}

func (t *TrueRange) String() string {
	return "TR"
}
