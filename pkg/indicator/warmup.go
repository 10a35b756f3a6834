package indicator

// WarmupState tells whether an indicator has seen enough samples to produce a value.
type WarmupState int

const (
	WarmingUp WarmupState = iota
	Ready
)

func (s WarmupState) String() string {
	switch s {
	case WarmingUp:
		return "warming_up"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// warmup counts samples until required have been seen, then stays Ready until reset.
type warmup struct {
	state    WarmupState
	count    int
	required int
}

func newWarmup(required int) warmup {
	return warmup{state: WarmingUp, required: required}
}

// tick records one sample and returns the state after it.
func (w *warmup) tick() WarmupState {
	if w.state == Ready {
		return Ready
	}

	w.count++
	if w.count >= w.required {
		w.state = Ready
	}

	return w.state
}

func (w *warmup) reset() {
	w.state = WarmingUp
	w.count = 0
}
