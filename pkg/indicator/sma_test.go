package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SMATestSuite struct {
	suite.Suite
}

func TestSMASuite(t *testing.T) {
	suite.Run(t, new(SMATestSuite))
}

func (suite *SMATestSuite) TestNew() {
	_, err := NewSimpleMovingAverage(0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	_, err = NewSimpleMovingAverage(-3)
	suite.ErrorIs(err, errors.ErrInvalidParameter)

	sma, err := NewSimpleMovingAverage(1)
	suite.NoError(err)
	suite.Equal(1, sma.Period())
}

func (suite *SMATestSuite) TestNext() {
	sma, err := NewSimpleMovingAverage(4)
	suite.Require().NoError(err)

	tests := []struct {
		input string
		want  string
	}{
		{"4", "4"},
		{"5", "4.5"},
		{"6", "5"},
		{"6", "5.25"},
		{"6", "5.75"},
		{"6", "6"},
		{"2", "5"},
	}

	for i, tt := range tests {
		got := sma.Next(d(tt.input))
		suite.Truef(got.Equal(d(tt.want)), "step %d: want %s, got %s", i, tt.want, got)
	}
}

func (suite *SMATestSuite) TestFirstSampleIdentity() {
	for _, v := range []string{"0", "1", "-2.5", "123456.789", "0.0001"} {
		sma, err := NewSimpleMovingAverage(7)
		suite.Require().NoError(err)
		suite.True(sma.Next(d(v)).Equal(d(v)), v)
	}
}

func (suite *SMATestSuite) TestNextClose() {
	sma, err := NewSimpleMovingAverage(3)
	suite.Require().NoError(err)

	suite.True(sma.NextClose(flat(4)).Equal(decimal.NewFromInt(4)))
	suite.True(sma.NextClose(flat(4)).Equal(decimal.NewFromInt(4)))
	suite.True(sma.NextClose(flat(7)).Equal(decimal.NewFromInt(5)))
	suite.True(sma.NextClose(flat(1)).Equal(decimal.NewFromInt(4)))
}

func (suite *SMATestSuite) TestReset() {
	sma, err := NewSimpleMovingAverage(4)
	suite.Require().NoError(err)

	suite.True(sma.Next(d("4")).Equal(d("4")))
	suite.True(sma.Next(d("5")).Equal(d("4.5")))
	suite.True(sma.Next(d("6")).Equal(d("5")))

	sma.Reset()
	suite.True(sma.Next(d("99")).Equal(d("99")))
	suite.True(sma.Next(d("1")).Equal(d("50")))
}

func (suite *SMATestSuite) TestWindowNeverGrows() {
	sma, err := NewSimpleMovingAverage(3)
	suite.Require().NoError(err)

	for i := 0; i < 1000; i++ {
		sma.Next(decimal.NewFromInt(int64(i)))
	}

	suite.Len(sma.window, 3)
	// window now holds 998, 999, 1000
	suite.True(sma.Next(decimal.NewFromInt(1000)).Equal(decimal.NewFromInt(999)))
}

func (suite *SMATestSuite) TestDefaultAndString() {
	suite.Equal(DefaultSMAPeriod, DefaultSimpleMovingAverage().Period())

	sma, err := NewSimpleMovingAverage(5)
	suite.Require().NoError(err)
	suite.Equal("SMA(5)", sma.String())
}
