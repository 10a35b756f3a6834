package indicator

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// DefaultATRPeriod is the period used by DefaultAverageTrueRange.
const DefaultATRPeriod = 14

// AverageTrueRange is the Wilder-smoothed TrueRange.
type AverageTrueRange struct {
	trueRange *TrueRange
	rma       *RollingMovingAverage
}

// NewAverageTrueRange creates an ATR smoothing over period bars.
func NewAverageTrueRange(period int) (*AverageTrueRange, error) {
	rma, err := NewRollingMovingAverage(period)
	if err != nil {
		return nil, err
	}

	return &AverageTrueRange{
		trueRange: NewTrueRange(),
		rma:       rma,
	}, nil
}

// DefaultAverageTrueRange creates an ATR with DefaultATRPeriod.
func DefaultAverageTrueRange() *AverageTrueRange {
	a, _ := NewAverageTrueRange(DefaultATRPeriod)
	return a
}

// Next returns the ATR for bar, pending until period bars have been seen.
func (a *AverageTrueRange) Next(bar HLC) optional.Option[decimal.Decimal] {
	return a.rma.Next(a.trueRange.Next(bar))
}

// State reports the warm-up state of the smoothing stage.
func (a *AverageTrueRange) State() WarmupState {
	return a.rma.State()
}

func (a *AverageTrueRange) Reset() {
	a.trueRange.Reset()
	a.rma.Reset()
}

func (a *AverageTrueRange) Period() int {
	return a.rma.Period()
}

func (a *AverageTrueRange) String() string {
	return fmt.Sprintf("ATR(%d)", a.rma.Period())
}
