package boot

import (
	"sbi-in-go/clint"
	"sbi-in-go/machine"
)

// Pause parks the calling hart until its own software-interrupt
// pending flag is observed. The software-interrupt enable bit is
// restored to what it was on entry, and the pending flag is clear on
// return either way, so a later notification cannot be misread as
// left over from this wait.
func Pause(csr machine.CSR, cl clint.Registers) {
	hart := csr.HartID()

	cl.ClearSoft(hart)
	csr.ClearMip(machine.IP_MSIP)

	prev := csr.ReadMie()&machine.IP_MSIP != 0
	csr.SetMie(machine.IP_MSIP)
	for {
		csr.Wfi()
		if csr.ReadMip()&machine.IP_MSIP != 0 {
			break
		}
	}
	if !prev {
		csr.ClearMie(machine.IP_MSIP)
	}

	cl.ClearSoft(hart)
	csr.ClearMip(machine.IP_MSIP)
}
