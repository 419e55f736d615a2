package sim

import (
	"runtime"
	"sync"

	"sbi-in-go/machine"
)

// Hart is one hart's machine-level CSR file. The software-interrupt
// and timer pending bits are level signals wired from the CLINT, as
// in hardware: they cannot be cleared through mip, only at the source.
type Hart struct {
	id    uint64
	clint *CLINT

	mu      sync.Mutex
	mip     uint64
	mie     uint64
	mideleg uint64
	medeleg uint64
}

func NewHart(id uint64, cl *CLINT) *Hart {
	return &Hart{id: id, clint: cl}
}

func (h *Hart) HartID() uint64 { return h.id }

func (h *Hart) ReadMip() uint64 {
	h.mu.Lock()
	v := h.mip
	h.mu.Unlock()

	v &^= machine.IP_MSIP | machine.IP_MTIP
	if h.clint.Soft(h.id) {
		v |= machine.IP_MSIP
	}
	if h.clint.TimerPending(h.id) {
		v |= machine.IP_MTIP
	}
	return v
}

func (h *Hart) SetMip(mask uint64) {
	h.mu.Lock()
	h.mip |= mask
	h.mu.Unlock()
}

func (h *Hart) ClearMip(mask uint64) {
	h.mu.Lock()
	h.mip &^= mask
	h.mu.Unlock()
}

func (h *Hart) ReadMie() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mie
}

func (h *Hart) SetMie(mask uint64) {
	h.mu.Lock()
	h.mie |= mask
	h.mu.Unlock()
}

func (h *Hart) ClearMie(mask uint64) {
	h.mu.Lock()
	h.mie &^= mask
	h.mu.Unlock()
}

func (h *Hart) ReadMideleg() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mideleg
}

func (h *Hart) SetMideleg(mask uint64) {
	h.mu.Lock()
	h.mideleg |= mask
	h.mu.Unlock()
}

func (h *Hart) ReadMedeleg() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.medeleg
}

func (h *Hart) SetMedeleg(mask uint64) {
	h.mu.Lock()
	h.medeleg |= mask
	h.mu.Unlock()
}

// Wfi stalls until an enabled interrupt is pending, like the hardware
// instruction. The poll yields so the notifying goroutine can run.
func (h *Hart) Wfi() {
	for h.ReadMip()&h.ReadMie() == 0 {
		runtime.Gosched()
	}
}

var _ machine.CSR = (*Hart)(nil)
