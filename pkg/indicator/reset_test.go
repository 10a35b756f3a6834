package indicator

import (
	"fmt"
	"testing"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/mocks"
	"github.com/stretchr/testify/suite"
)

type ResetTestSuite struct {
	suite.Suite
	bars []types.MarketData
}

func TestResetSuite(t *testing.T) {
	suite.Run(t, new(ResetTestSuite))
}

func (suite *ResetTestSuite) SetupSuite() {
	config := mocks.DefaultConfig()
	config.Count = 500
	config.Volatility = 0.01
	suite.bars = mocks.NewDataGenerator(42).Generate(config)
}

// step feeds bar to ind and renders whatever it returned.
func step(ind Indicator, bar types.MarketData) string {
	switch v := ind.(type) {
	case *SimpleMovingAverage:
		return v.NextClose(bar).String()
	case *ExponentialMovingAverage:
		return v.NextClose(bar).String()
	case *RollingMovingAverage:
		return roundedTo(v.Next(bar.GetClose()), 16)
	case *TrueRange:
		return v.Next(bar).String()
	case *AverageTrueRange:
		return roundedTo(v.Next(bar), 16)
	case *DirectionalMovementIndex:
		out := v.Next(bar)
		return fmt.Sprintf("%s/%s/%s", roundedTo(out.DIPlus, 16), roundedTo(out.DIMinus, 16), roundedTo(out.ADX, 16))
	case *PivotPoints:
		return fmt.Sprintf("%v", v.Next(bar))
	default:
		panic(fmt.Sprintf("unexpected indicator %T", ind))
	}
}

// Reset must bring every indicator back to its freshly constructed state, so a
// replay after Reset matches both the first run and a brand new instance.
func (suite *ResetTestSuite) TestReplayAfterReset() {
	registry := NewRegistry()

	for _, t := range registry.List() {
		suite.Run(string(t), func() {
			params := Params{Period: 5, Lookback: 2, NumPivots: 4}

			ind, err := registry.Build(t, params)
			suite.Require().NoError(err)
			fresh, err := registry.Build(t, params)
			suite.Require().NoError(err)

			first := make([]string, 0, len(suite.bars))
			for _, bar := range suite.bars {
				first = append(first, step(ind, bar))
			}

			ind.Reset()
			for i, bar := range suite.bars {
				suite.Require().Equalf(first[i], step(ind, bar), "replay diverged at bar %d", i)
				suite.Require().Equalf(first[i], step(fresh, bar), "fresh instance diverged at bar %d", i)
			}
		})
	}
}
