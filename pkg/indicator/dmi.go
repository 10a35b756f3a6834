package indicator

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// DefaultDMIPeriod is the period used by DefaultDirectionalMovementIndex.
const DefaultDMIPeriod = 14

// DirectionalMovementIndex computes Wilder's +DI, -DI and ADX.
//
// The first bar only primes the previous high and low and always yields a fully
// pending record. From the second bar on:
//
//	up = high - prevHigh, down = prevLow - low
//	+DM = up   if up > down and up > 0, else 0
//	-DM = down if down > up and down > 0, else 0
//	±DI = 100 * RMA(±DM) / ATR
//	DX  = |+DI - -DI| / (+DI + -DI)
//	ADX = 100 * RMA(DX)
//
// While the ATR is pending, or if it is zero, ±DI divide by 1 instead.
type DirectionalMovementIndex struct {
	period int

	atr     *AverageTrueRange
	plusDM  *RollingMovingAverage
	minusDM *RollingMovingAverage
	dx      *RollingMovingAverage

	primed   warmup
	prevHigh decimal.Decimal
	prevLow  decimal.Decimal
}

// NewDirectionalMovementIndex creates a DMI whose smoothing stages all use period.
func NewDirectionalMovementIndex(period int) (*DirectionalMovementIndex, error) {
	atr, err := NewAverageTrueRange(period)
	if err != nil {
		return nil, err
	}

	// period is already validated by the ATR above
	plusDM, _ := NewRollingMovingAverage(period)
	minusDM, _ := NewRollingMovingAverage(period)
	dx, _ := NewRollingMovingAverage(period)

	return &DirectionalMovementIndex{
		period:   period,
		atr:      atr,
		plusDM:   plusDM,
		minusDM:  minusDM,
		dx:       dx,
		primed:   newWarmup(1),
		prevHigh: decimal.Zero,
		prevLow:  decimal.Zero,
	}, nil
}

// DefaultDirectionalMovementIndex creates a DMI with DefaultDMIPeriod.
func DefaultDirectionalMovementIndex() *DirectionalMovementIndex {
	d, _ := NewDirectionalMovementIndex(DefaultDMIPeriod)
	return d
}

func (d *DirectionalMovementIndex) Next(bar HLC) ADX {
	atr := d.atr.Next(bar)
	high, low := bar.GetHigh(), bar.GetLow()

	if d.primed.state == WarmingUp {
		d.primed.tick()
		d.prevHigh, d.prevLow = high, low

		return PendingADX()
	}

	plus, minus := directionalMovement(high.Sub(d.prevHigh), d.prevLow.Sub(low))
	d.prevHigh, d.prevLow = high, low

	divisor := one
	if v, err := atr.Take(); err == nil && !v.IsZero() {
		divisor = v
	}

	toDI := func(v decimal.Decimal) decimal.Decimal {
		return hundred.Mul(v).Div(divisor)
	}

	out := PendingADX()
	out.DIPlus = optional.Map(d.plusDM.Next(plus), toDI)
	out.DIMinus = optional.Map(d.minusDM.Next(minus), toDI)

	diPlus, errPlus := out.DIPlus.Take()
	diMinus, errMinus := out.DIMinus.Take()
	if errPlus != nil || errMinus != nil {
		return out
	}

	sum := diPlus.Add(diMinus)
	if sum.IsZero() {
		return out
	}

	dx := diPlus.Sub(diMinus).Abs().Div(sum)
	out.ADX = optional.Map(d.dx.Next(dx), func(v decimal.Decimal) decimal.Decimal {
		return hundred.Mul(v)
	})

	return out
}

// directionalMovement applies Wilder's tie-break: only the strictly larger,
// positive move counts.
func directionalMovement(up, down decimal.Decimal) (plus, minus decimal.Decimal) {
	switch {
	case up.GreaterThan(down) && up.IsPositive():
		return up, decimal.Zero
	case down.GreaterThan(up) && down.IsPositive():
		return decimal.Zero, down
	default:
		return decimal.Zero, decimal.Zero
	}
}

// States returns the warm-up state of +DI, -DI and ADX, in that order.
func (d *DirectionalMovementIndex) States() (diPlus, diMinus, adx WarmupState) {
	return d.plusDM.State(), d.minusDM.State(), d.dx.State()
}

func (d *DirectionalMovementIndex) Reset() {
	d.atr.Reset()
	d.plusDM.Reset()
	d.minusDM.Reset()
	d.dx.Reset()
	d.primed.reset()
	d.prevHigh, d.prevLow = decimal.Zero, decimal.Zero
}

func (d *DirectionalMovementIndex) Period() int {
	return d.period
}

func (d *DirectionalMovementIndex) String() string {
	return fmt.Sprintf("DMI(%d)", d.period)
}
