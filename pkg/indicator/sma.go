package indicator

import (
	"fmt"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultSMAPeriod is the period used by DefaultSimpleMovingAverage.
const DefaultSMAPeriod = 9

// SimpleMovingAverage is the unweighted mean of the last period samples.
//
// During warm-up the mean is taken over the samples seen so far, so the first
// call returns its input unchanged.
type SimpleMovingAverage struct {
	period int
	index  int
	count  int
	sum    decimal.Decimal
	window []decimal.Decimal
}

// NewSimpleMovingAverage creates an SMA over period samples.
func NewSimpleMovingAverage(period int) (*SimpleMovingAverage, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "period must be a positive integer, got %d", period)
	}

	return &SimpleMovingAverage{
		period: period,
		sum:    decimal.Zero,
		window: make([]decimal.Decimal, period),
	}, nil
}

// DefaultSimpleMovingAverage creates an SMA with DefaultSMAPeriod.
func DefaultSimpleMovingAverage() *SimpleMovingAverage {
	s, _ := NewSimpleMovingAverage(DefaultSMAPeriod)
	return s
}

// Next adds x to the window and returns the current average.
func (s *SimpleMovingAverage) Next(x decimal.Decimal) decimal.Decimal {
	evicted := s.window[s.index]
	s.window[s.index] = x

	s.index++
	if s.index == s.period {
		s.index = 0
	}

	if s.count < s.period {
		s.count++
	}

	s.sum = s.sum.Sub(evicted).Add(x)

	return s.sum.Div(decimal.NewFromInt(int64(s.count)))
}

// NextClose feeds the closing price of c.
func (s *SimpleMovingAverage) NextClose(c ClosePricer) decimal.Decimal {
	return s.Next(c.GetClose())
}

func (s *SimpleMovingAverage) Reset() {
	s.index = 0
	s.count = 0
	s.sum = decimal.Zero
	for i := range s.window {
		s.window[i] = decimal.Zero
	}
}

func (s *SimpleMovingAverage) Period() int {
	return s.period
}

func (s *SimpleMovingAverage) String() string {
	return fmt.Sprintf("SMA(%d)", s.period)
}
