package engine

// Timer is a one-shot countdown in seconds. The zero value is ready.
type Timer struct {
	remaining float64
}

func (t *Timer) Start(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	t.remaining = seconds
}

func (t *Timer) Ready() bool {
	return t.remaining <= 0
}

func (t *Timer) Tick(dt float64) {
	if t.remaining <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining < 0 {
		t.remaining = 0
	}
}

func (t *Timer) Remaining() float64 {
	return t.remaining
}
