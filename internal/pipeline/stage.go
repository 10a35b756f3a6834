package pipeline

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/rxtech-lab/argo-indicators/pkg/indicator"
	"github.com/shopspring/decimal"
)

// stage adapts one named indicator to the row layout. step writes exactly
// len(columns) values into dst.
type stage struct {
	name      string
	indicator indicator.Indicator
	columns   []string
	step      func(bar types.MarketData, dst []optional.Option[decimal.Decimal])
}

func newStage(name string, ind indicator.Indicator) (*stage, error) {
	s := &stage{name: name, indicator: ind}

	switch v := ind.(type) {
	case *indicator.SimpleMovingAverage:
		s.columns = []string{name}
		s.step = func(bar types.MarketData, dst []optional.Option[decimal.Decimal]) {
			dst[0] = optional.Some(v.NextClose(bar))
		}
	case *indicator.ExponentialMovingAverage:
		s.columns = []string{name}
		s.step = func(bar types.MarketData, dst []optional.Option[decimal.Decimal]) {
			dst[0] = optional.Some(v.NextClose(bar))
		}
	case *indicator.RollingMovingAverage:
		s.columns = []string{name}
		s.step = func(bar types.MarketData, dst []optional.Option[decimal.Decimal]) {
			dst[0] = v.Next(bar.GetClose())
		}
	case *indicator.TrueRange:
		s.columns = []string{name}
		s.step = func(bar types.MarketData, dst []optional.Option[decimal.Decimal]) {
			dst[0] = optional.Some(v.Next(bar))
		}
	case *indicator.AverageTrueRange:
		s.columns = []string{name}
		s.step = func(bar types.MarketData, dst []optional.Option[decimal.Decimal]) {
			dst[0] = v.Next(bar)
		}
	case *indicator.DirectionalMovementIndex:
		s.columns = []string{name + ".adx", name + ".di_plus", name + ".di_minus"}
		s.step = func(bar types.MarketData, dst []optional.Option[decimal.Decimal]) {
			out := v.Next(bar)
			dst[0], dst[1], dst[2] = out.ADX, out.DIPlus, out.DIMinus
		}
	case *indicator.PivotPoints:
		// the price of a pivot confirmed on this bar, if any
		s.columns = []string{name + ".high", name + ".low"}
		s.step = func(bar types.MarketData, dst []optional.Option[decimal.Decimal]) {
			v.Next(bar)
			dst[0], dst[1] = optional.None[decimal.Decimal](), optional.None[decimal.Decimal]()

			for _, p := range v.Found() {
				switch p.Type {
				case indicator.PivotTypeHigh:
					dst[0] = optional.Some(p.Price)
				case indicator.PivotTypeLow:
					dst[1] = optional.Some(p.Price)
				}
			}
		}
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedIndicator, "indicator %s (%s) cannot be used in a pipeline", name, ind)
	}

	return s, nil
}
