package boot

import "sync/atomic"

// Lock is a test-and-set spinlock. The firmware has no scheduler to
// block against, so contention spins; the only multi-hart resources
// behind it are the boot event log and one-time region setup.
type Lock struct {
	locked uint32
}

func (l *Lock) Acquire() {
	for !atomic.CompareAndSwapUint32(&l.locked, 0, 1) {
	}
}

func (l *Lock) Release() {
	atomic.StoreUint32(&l.locked, 0)
}
