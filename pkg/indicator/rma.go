package indicator

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// DefaultRMAPeriod is the period used by DefaultRollingMovingAverage.
const DefaultRMAPeriod = 14

// RollingMovingAverage is Wilder's smoothing: an exponential average with weight
// 1/period, seeded with the simple average of the first period samples.
//
//	current = (current*(period-1) + x) / period
//
// The output is pending for the first period-1 samples.
type RollingMovingAverage struct {
	period  int
	sma     *SimpleMovingAverage
	clock   warmup
	current decimal.Decimal

	retained decimal.Decimal
	divisor  decimal.Decimal
}

// NewRollingMovingAverage creates an RMA with the given period.
func NewRollingMovingAverage(period int) (*RollingMovingAverage, error) {
	sma, err := NewSimpleMovingAverage(period)
	if err != nil {
		return nil, err
	}

	return &RollingMovingAverage{
		period:   period,
		sma:      sma,
		clock:    newWarmup(period),
		current:  decimal.Zero,
		retained: decimal.NewFromInt(int64(period - 1)),
		divisor:  decimal.NewFromInt(int64(period)),
	}, nil
}

// DefaultRollingMovingAverage creates an RMA with DefaultRMAPeriod.
func DefaultRollingMovingAverage() *RollingMovingAverage {
	r, _ := NewRollingMovingAverage(DefaultRMAPeriod)
	return r
}

// Next feeds x and returns the smoothed value once the seed is available.
func (r *RollingMovingAverage) Next(x decimal.Decimal) optional.Option[decimal.Decimal] {
	if r.clock.state == Ready {
		r.current = r.current.Mul(r.retained).Add(x).Div(r.divisor)

		return optional.Some(r.current)
	}

	seed := r.sma.Next(x)
	if r.clock.tick() == WarmingUp {
		return optional.None[decimal.Decimal]()
	}

	r.current = seed

	return optional.Some(r.current)
}

// State reports whether the seed has been taken yet.
func (r *RollingMovingAverage) State() WarmupState {
	return r.clock.state
}

func (r *RollingMovingAverage) Reset() {
	r.current = decimal.Zero
	r.clock.reset()
	r.sma, _ = NewSimpleMovingAverage(r.period)
}

func (r *RollingMovingAverage) Period() int {
	return r.period
}

func (r *RollingMovingAverage) String() string {
	return fmt.Sprintf("RMA(%d)", r.period)
}
