package indicator

import (
	"fmt"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	DefaultPivotLookback  = 3
	DefaultPivotNumPivots = 5
)

type PivotType int

const (
	PivotTypeUnknown PivotType = iota
	PivotTypeHigh
	PivotTypeLow
)

func (t PivotType) String() string {
	switch t {
	case PivotTypeHigh:
		return "high"
	case PivotTypeLow:
		return "low"
	default:
		return "unknown"
	}
}

func (t PivotType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Pivot is a detected fractal extremum. Slots of the history that have not been
// filled yet hold a zero-priced PivotTypeUnknown entry.
type Pivot struct {
	Price decimal.Decimal `json:"price"`
	Type  PivotType       `json:"type"`
}

// PivotPoints detects fractal highs and lows over a sliding window of
// 2*lookback+1 bars and keeps the last numPivots detections.
//
// The centre bar is a pivot high when highs rise strictly on every step towards it
// from the left edge of the window and fall strictly on every step away from it to
// the right edge. Pivot lows mirror this using lows. Nothing is detected until the
// window has been filled with real bars.
type PivotPoints struct {
	lookback  int
	numPivots int

	// sliding window, oldest at head
	highs  []decimal.Decimal
	lows   []decimal.Decimal
	head   int
	filled int

	// pivot history, oldest at pivotHead
	pivots    []Pivot
	pivotHead int

	found  [2]Pivot
	nFound int
	out    []Pivot
}

// NewPivotPoints creates a detector. It fails when both lookback and numPivots are
// zero, or when either is negative.
func NewPivotPoints(lookback, numPivots int) (*PivotPoints, error) {
	if lookback < 0 || numPivots < 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "lookback and num_pivots must not be negative, got (%d, %d)", lookback, numPivots)
	}

	if lookback == 0 && numPivots == 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "lookback and num_pivots cannot both be zero")
	}

	size := 2*lookback + 1
	p := &PivotPoints{
		lookback:  lookback,
		numPivots: numPivots,
		highs:     make([]decimal.Decimal, size),
		lows:      make([]decimal.Decimal, size),
		pivots:    make([]Pivot, numPivots),
		out:       make([]Pivot, numPivots),
	}
	p.Reset()

	return p, nil
}

// DefaultPivotPoints creates a detector with lookback 3 keeping 5 pivots.
func DefaultPivotPoints() *PivotPoints {
	p, _ := NewPivotPoints(DefaultPivotLookback, DefaultPivotNumPivots)
	return p
}

// Next slides bar into the window and returns the pivot history, oldest first.
// The returned slice is owned by p and is overwritten by the next call to Next or Reset.
func (p *PivotPoints) Next(bar HL) []Pivot {
	size := len(p.highs)

	// head is the oldest slot; overwrite it and advance
	p.highs[p.head] = bar.GetHigh()
	p.lows[p.head] = bar.GetLow()
	p.head = (p.head + 1) % size

	if p.filled < size {
		p.filled++
	}

	p.nFound = 0
	if p.filled == size {
		center := p.slot(p.lookback)
		if p.fractal(p.highs, decimal.Decimal.GreaterThan) {
			p.record(Pivot{Price: p.highs[center], Type: PivotTypeHigh})
		}

		if p.fractal(p.lows, decimal.Decimal.LessThan) {
			p.record(Pivot{Price: p.lows[center], Type: PivotTypeLow})
		}
	}

	return p.history()
}

// fractal walks the window from oldest to newest. Every step up to the centre must
// move strictly towards the extreme, every step after it strictly away.
func (p *PivotPoints) fractal(series []decimal.Decimal, beyond func(a, b decimal.Decimal) bool) bool {
	for i := 0; i < 2*p.lookback; i++ {
		prev, next := series[p.slot(i)], series[p.slot(i+1)]
		if i < p.lookback {
			if !beyond(next, prev) {
				return false
			}
		} else if !beyond(prev, next) {
			return false
		}
	}

	return true
}

func (p *PivotPoints) slot(i int) int {
	return (p.head + i) % len(p.highs)
}

func (p *PivotPoints) record(pivot Pivot) {
	p.found[p.nFound] = pivot
	p.nFound++

	if p.numPivots == 0 {
		return
	}

	p.pivots[p.pivotHead] = pivot
	p.pivotHead = (p.pivotHead + 1) % p.numPivots
}

func (p *PivotPoints) history() []Pivot {
	for i := range p.out {
		p.out[i] = p.pivots[(p.pivotHead+i)%p.numPivots]
	}

	return p.out
}

// Found returns the pivots detected by the most recent call to Next: none, one, or
// a high followed by a low when the centre bar is an outside bar.
func (p *PivotPoints) Found() []Pivot {
	return p.found[:p.nFound]
}

// State reports whether the window has been filled with real bars.
func (p *PivotPoints) State() WarmupState {
	if p.filled == len(p.highs) {
		return Ready
	}

	return WarmingUp
}

func (p *PivotPoints) Reset() {
	for i := range p.highs {
		p.highs[i] = decimal.Zero
		p.lows[i] = decimal.Zero
	}

	for i := range p.pivots {
		p.pivots[i] = Pivot{Price: decimal.Zero, Type: PivotTypeUnknown}
		p.out[i] = p.pivots[i]
	}

	p.head = 0
	p.filled = 0
	p.pivotHead = 0
	p.nFound = 0
}

func (p *PivotPoints) Lookback() int {
	return p.lookback
}

func (p *PivotPoints) NumPivots() int {
	return p.numPivots
}

func (p *PivotPoints) String() string {
	return fmt.Sprintf("PIVOT(%d,%d)", p.lookback, p.numPivots)
}
