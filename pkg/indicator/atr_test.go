package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ATRTestSuite struct {
	suite.Suite
}

func TestATRSuite(t *testing.T) {
	suite.Run(t, new(ATRTestSuite))
}

func (suite *ATRTestSuite) TestNew() {
	_, err := NewAverageTrueRange(0)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	_, err = NewAverageTrueRange(-3)
	suite.ErrorIs(err, errors.ErrInvalidParameter)
}

func (suite *ATRTestSuite) TestNext() {
	atr, err := NewAverageTrueRange(3)
	suite.Require().NoError(err)

	bars := []struct {
		open, high, low, close float64
		want                   string
	}{
		{9.7, 10.0, 9.0, 9.5, "pending"},
		{9.9, 10.4, 9.8, 10.2, "pending"},
		{10.1, 10.7, 9.4, 9.7, "1.06666667"},
		{9.1, 9.2, 8.1, 8.4, "1.24444444"},
	}

	for i, b := range bars {
		got := roundedTo(atr.Next(ohlc(b.open, b.high, b.low, b.close)), 8)
		suite.Equalf(b.want, got, "bar %d", i)
	}

	suite.Equal(Ready, atr.State())
}

func (suite *ATRTestSuite) TestFlatBarsAreZero() {
	atr, err := NewAverageTrueRange(2)
	suite.Require().NoError(err)

	atr.Next(flat(5))
	suite.Equal("0", roundedTo(atr.Next(flat(5)), 8))
	suite.Equal("0", roundedTo(atr.Next(flat(5)), 8))
}

func (suite *ATRTestSuite) TestResetForgetsPreviousClose() {
	atr, err := NewAverageTrueRange(1)
	suite.Require().NoError(err)

	atr.Next(flat(100))
	atr.Reset()
	suite.Equal(WarmingUp, atr.State())

	// without the reset the gap to 100 would dominate
	suite.Equal("1", roundedTo(atr.Next(ohlc(2, 2, 1, 1.5)), 8))
}

func (suite *ATRTestSuite) TestDefaultAndString() {
	atr := DefaultAverageTrueRange()
	suite.Equal(DefaultATRPeriod, atr.Period())
	suite.Equal("ATR(14)", atr.String())
}
