package state

// signal is a coalescing change notification: any number of writes between
// two reads produce a single wake-up.
type signal chan struct{}

func newSignal() signal {
	return make(signal, 1)
}

func (s signal) notify() {
	select {
	case s <- struct{}{}:
	default:
	}
}
