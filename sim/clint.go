// Package sim is the simulation harness: an in-memory CLINT and
// per-hart CSR file with the same visible behavior as the hardware,
// so the boot, trap and SBI logic can run under go test with harts as
// goroutines.
package sim

import (
	"sync/atomic"
	"time"
)

// CLINT models the interruptor: a pending flag and compare register
// per hart, one shared counter derived from the monotonic clock.
type CLINT struct {
	msip  []uint32
	cmp   []uint64
	start time.Time

	nsPerTick uint64
}

func NewCLINT(numHarts int) *CLINT {
	c := &CLINT{
		msip:      make([]uint32, numHarts),
		cmp:       make([]uint64, numHarts),
		start:     time.Now(),
		nsPerTick: 1000, // 1 MHz, the usual rtcclk rate
	}
	for i := range c.cmp {
		atomic.StoreUint64(&c.cmp[i], ^uint64(0))
	}
	return c
}

func (c *CLINT) SendSoft(hart uint64) {
	atomic.StoreUint32(&c.msip[hart], 1)
}

func (c *CLINT) ClearSoft(hart uint64) {
	atomic.StoreUint32(&c.msip[hart], 0)
}

func (c *CLINT) Soft(hart uint64) bool {
	return atomic.LoadUint32(&c.msip[hart]) != 0
}

func (c *CLINT) Mtime() uint64 {
	return uint64(time.Since(c.start).Nanoseconds()) / c.nsPerTick
}

func (c *CLINT) SetTimer(hart uint64, cmp uint64) {
	atomic.StoreUint64(&c.cmp[hart], cmp)
}

// TimerPending reports whether hart's compare register has fired.
func (c *CLINT) TimerPending(hart uint64) bool {
	return c.Mtime() >= atomic.LoadUint64(&c.cmp[hart])
}
