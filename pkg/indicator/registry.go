package indicator

import (
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// Type names an indicator kind in configuration files.
type Type string

const (
	TypeSMA         Type = "sma"
	TypeEMA         Type = "ema"
	TypeRMA         Type = "rma"
	TypeTrueRange   Type = "tr"
	TypeATR         Type = "atr"
	TypeDMI         Type = "dmi"
	TypePivotPoints Type = "pivot_points"
)

// Params carries the construction options recognised by the factories. A zero
// field means "use the indicator's default".
type Params struct {
	Period    int
	Lookback  int
	NumPivots int
}

// Factory builds a fresh indicator from params.
type Factory func(params Params) (Indicator, error)

// Registry maps indicator types to factories.
type Registry interface {
	Register(t Type, factory Factory) error
	Build(t Type, params Params) (Indicator, error)
	List() []Type
	Remove(t Type) error
}

// RegistryV1 is the default Registry implementation.
type RegistryV1 struct {
	factories map[Type]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a registry preloaded with every built-in indicator.
func NewRegistry() Registry {
	r := &RegistryV1{
		factories: make(map[Type]Factory),
		mu:        sync.RWMutex{},
	}

	for t, f := range builtins() {
		// keys are unique, registration cannot fail here
		_ = r.Register(t, f)
	}

	return r
}

// Register adds a factory. Registering the same type twice is an error.
func (r *RegistryV1) Register(t Type, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[t]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "indicator type %s already registered", t)
	}

	r.factories[t] = factory

	return nil
}

// Build constructs a new indicator of type t.
func (r *RegistryV1) Build(t Type, params Params) (Indicator, error) {
	r.mu.RLock()
	factory, exists := r.factories[t]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator type %s not found", t)
	}

	return factory(params)
}

// List returns the registered types in lexical order.
func (r *RegistryV1) List() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]Type, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}

// Remove unregisters a type.
func (r *RegistryV1) Remove(t Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[t]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator type %s not found", t)
	}

	delete(r.factories, t)

	return nil
}

func builtins() map[Type]Factory {
	return map[Type]Factory{
		TypeSMA: func(p Params) (Indicator, error) {
			s, err := NewSimpleMovingAverage(orDefault(p.Period, DefaultSMAPeriod))
			if err != nil {
				return nil, err
			}

			return s, nil
		},
		TypeEMA: func(p Params) (Indicator, error) {
			e, err := NewExponentialMovingAverage(orDefault(p.Period, DefaultEMAPeriod))
			if err != nil {
				return nil, err
			}

			return e, nil
		},
		TypeRMA: func(p Params) (Indicator, error) {
			r, err := NewRollingMovingAverage(orDefault(p.Period, DefaultRMAPeriod))
			if err != nil {
				return nil, err
			}

			return r, nil
		},
		TypeTrueRange: func(Params) (Indicator, error) {
			return NewTrueRange(), nil
		},
		TypeATR: func(p Params) (Indicator, error) {
			a, err := NewAverageTrueRange(orDefault(p.Period, DefaultATRPeriod))
			if err != nil {
				return nil, err
			}

			return a, nil
		},
		TypeDMI: func(p Params) (Indicator, error) {
			d, err := NewDirectionalMovementIndex(orDefault(p.Period, DefaultDMIPeriod))
			if err != nil {
				return nil, err
			}

			return d, nil
		},
		TypePivotPoints: func(p Params) (Indicator, error) {
			pp, err := NewPivotPoints(orDefault(p.Lookback, DefaultPivotLookback), orDefault(p.NumPivots, DefaultPivotNumPivots))
			if err != nil {
				return nil, err
			}

			return pp, nil
		},
	}
}

// orDefault substitutes def for an unset (zero) v. Negative values pass through
// so that the constructor rejects them.
func orDefault(v, def int) int {
	if v == 0 {
		return def
	}

	return v
}
