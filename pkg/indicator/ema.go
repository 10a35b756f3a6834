package indicator

import (
	"fmt"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultEMAPeriod is the period used by DefaultExponentialMovingAverage.
const DefaultEMAPeriod = 9

// ExponentialMovingAverage weights each new sample by k = 2/(period+1).
// The first sample seeds the average as-is, so the output is never pending.
type ExponentialMovingAverage struct {
	period  int
	k       decimal.Decimal
	current decimal.Decimal
	clock   warmup
}

// NewExponentialMovingAverage creates an EMA with the given period.
func NewExponentialMovingAverage(period int) (*ExponentialMovingAverage, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "period must be a positive integer, got %d", period)
	}

	return &ExponentialMovingAverage{
		period:  period,
		k:       two.Div(decimal.NewFromInt(int64(period) + 1)),
		current: decimal.Zero,
		clock:   newWarmup(1),
	}, nil
}

// DefaultExponentialMovingAverage creates an EMA with DefaultEMAPeriod.
func DefaultExponentialMovingAverage() *ExponentialMovingAverage {
	e, _ := NewExponentialMovingAverage(DefaultEMAPeriod)
	return e
}

// Next folds x into the average and returns it.
func (e *ExponentialMovingAverage) Next(x decimal.Decimal) decimal.Decimal {
	if e.clock.state == WarmingUp {
		e.clock.tick()
		e.current = x

		return e.current
	}

	e.current = e.k.Mul(x).Add(one.Sub(e.k).Mul(e.current))

	return e.current
}

// NextClose feeds the closing price of c.
func (e *ExponentialMovingAverage) NextClose(c ClosePricer) decimal.Decimal {
	return e.Next(c.GetClose())
}

func (e *ExponentialMovingAverage) Reset() {
	e.current = decimal.Zero
	e.clock.reset()
}

func (e *ExponentialMovingAverage) Period() int {
	return e.period
}

func (e *ExponentialMovingAverage) String() string {
	return fmt.Sprintf("EMA(%d)", e.period)
}
