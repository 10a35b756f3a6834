package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ohlc(open, high, low, close float64) types.MarketData {
	return types.NewMarketDataBuilder().
		Open(open).
		High(high).
		Low(low).
		Close(close).
		Volume(1000).
		MustBuild()
}

// flat is a bar whose open, high, low and close are all v.
func flat(v float64) types.MarketData {
	return ohlc(v, v, v, v)
}

// roundedTo returns the available value rounded to places, or "pending".
func roundedTo(o optional.Option[decimal.Decimal], places int32) string {
	v, err := o.Take()
	if err != nil {
		return "pending"
	}

	return v.Round(places).String()
}
