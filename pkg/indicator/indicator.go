// Package indicator implements streaming technical-analysis indicators.
//
// Every indicator consumes one sample per call to Next and produces one output in
// constant time, holding only a fixed-size window allocated at construction. Values
// are fixed-point decimals so that long-running recurrences do not drift.
//
// Indicators that need a warm-up period return optional.Option values: None while
// pending, Some once enough samples have been seen. An instance must not be used
// from more than one goroutine at a time.
package indicator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClosePricer is anything exposing a closing price.
type ClosePricer interface {
	GetClose() decimal.Decimal
}

// HL is anything exposing a high and a low price.
type HL interface {
	GetHigh() decimal.Decimal
	GetLow() decimal.Decimal
}

// HLC is the capability required by the volatility and directional indicators.
type HLC interface {
	HL
	ClosePricer
}

// Bar is a complete OHLCV snapshot.
type Bar interface {
	HLC
	GetOpen() decimal.Decimal
	GetVolume() decimal.Decimal
}

// Indicator is the surface shared by every streaming indicator.
type Indicator interface {
	fmt.Stringer
	// Reset returns the indicator to its post-construction state.
	Reset()
}

// Perioder is implemented by indicators configured with a single period.
type Perioder interface {
	Period() int
}

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)
