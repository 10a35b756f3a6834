package types

import (
	"time"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/shopspring/decimal"
)

// MarketData is one OHLCV bar. It satisfies indicator.Bar.
type MarketData struct {
	Time   time.Time       `csv:"time" json:"time"`
	Symbol string          `csv:"symbol" json:"symbol"`
	Open   decimal.Decimal `csv:"open" json:"open"`
	High   decimal.Decimal `csv:"high" json:"high"`
	Low    decimal.Decimal `csv:"low" json:"low"`
	Close  decimal.Decimal `csv:"close" json:"close"`
	Volume decimal.Decimal `csv:"volume" json:"volume"`
}

func (m MarketData) GetOpen() decimal.Decimal   { return m.Open }
func (m MarketData) GetHigh() decimal.Decimal   { return m.High }
func (m MarketData) GetLow() decimal.Decimal    { return m.Low }
func (m MarketData) GetClose() decimal.Decimal  { return m.Close }
func (m MarketData) GetVolume() decimal.Decimal { return m.Volume }

// Validate checks that the bar is internally consistent: no negative values, and
// open and close within [low, high].
func (m MarketData) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"open", m.Open},
		{"high", m.High},
		{"low", m.Low},
		{"close", m.Close},
		{"volume", m.Volume},
	}

	for _, f := range fields {
		if f.value.IsNegative() {
			return errors.Newf(errors.ErrCodeInvalidBar, "%s must not be negative, got %s", f.name, f.value)
		}
	}

	if m.Low.GreaterThan(m.High) {
		return errors.Newf(errors.ErrCodeInvalidBar, "low %s is above high %s", m.Low, m.High)
	}

	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{{"open", m.Open}, {"close", m.Close}} {
		if f.value.LessThan(m.Low) || f.value.GreaterThan(m.High) {
			return errors.Newf(errors.ErrCodeInvalidBar, "%s %s is outside [%s, %s]", f.name, f.value, m.Low, m.High)
		}
	}

	return nil
}

// MarketDataBuilder assembles a MarketData and validates it on Build.
type MarketDataBuilder struct {
	data MarketData
}

func NewMarketDataBuilder() *MarketDataBuilder {
	return &MarketDataBuilder{}
}

func (b *MarketDataBuilder) Time(t time.Time) *MarketDataBuilder {
	b.data.Time = t
	return b
}

func (b *MarketDataBuilder) Symbol(symbol string) *MarketDataBuilder {
	b.data.Symbol = symbol
	return b
}

func (b *MarketDataBuilder) Open(v float64) *MarketDataBuilder {
	b.data.Open = decimal.NewFromFloat(v)
	return b
}

func (b *MarketDataBuilder) High(v float64) *MarketDataBuilder {
	b.data.High = decimal.NewFromFloat(v)
	return b
}

func (b *MarketDataBuilder) Low(v float64) *MarketDataBuilder {
	b.data.Low = decimal.NewFromFloat(v)
	return b
}

func (b *MarketDataBuilder) Close(v float64) *MarketDataBuilder {
	b.data.Close = decimal.NewFromFloat(v)
	return b
}

func (b *MarketDataBuilder) Volume(v float64) *MarketDataBuilder {
	b.data.Volume = decimal.NewFromFloat(v)
	return b
}

// Build validates and returns the bar.
func (b *MarketDataBuilder) Build() (MarketData, error) {
	if err := b.data.Validate(); err != nil {
		return MarketData{}, err
	}

	return b.data, nil
}

// MustBuild is Build for fixtures; it panics on an invalid bar.
func (b *MarketDataBuilder) MustBuild() MarketData {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}

	return m
}
