package sbi

import (
	"sbi-in-go/clint"
	"sbi-in-go/machine"
)

// timerExt implements the TIME extension. set_timer programs the
// calling hart's compare register, retracts any pending supervisor
// timer signal, and rearms the machine timer interrupt that Serve
// masked on last delivery.
type timerExt struct {
	clint clint.Registers
	csr   machine.CSR
}

func NewTimer(c clint.Registers, csr machine.CSR) Extension {
	return &timerExt{clint: c, csr: csr}
}

func (t *timerExt) Call(hart uint64, fn uint64, args [6]uint64) Ret {
	switch fn {
	case TimerSetTimer:
		t.clint.SetTimer(hart, args[0])
		t.csr.ClearMip(machine.IP_STIP)
		t.csr.SetMie(machine.IP_MTIP)
		return Ret{}
	}
	return Ret{Error: ErrNotSupported}
}
