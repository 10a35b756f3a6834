package types

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type IndicatorRowTestSuite struct {
	suite.Suite
}

func TestIndicatorRowSuite(t *testing.T) {
	suite.Run(t, new(IndicatorRowTestSuite))
}

func (suite *IndicatorRowTestSuite) TestPending() {
	row := IndicatorRow{
		Values: []optional.Option[decimal.Decimal]{
			optional.None[decimal.Decimal](),
			optional.None[decimal.Decimal](),
		},
	}
	suite.True(row.Pending())

	row.Values[1] = optional.Some(decimal.NewFromInt(3))
	suite.False(row.Pending())

	suite.True(IndicatorRow{}.Pending())
}
