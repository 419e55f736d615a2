package boot

import "sbi-in-go/machine"

// Interrupts and exceptions a hart hands straight to supervisor mode.
// The supervisor environment call stays with machine mode (it is the
// SBI entry), as do the machine timer and machine software interrupt.
const (
	midelegMask = machine.IP_SEIP | machine.IP_STIP | machine.IP_SSIP |
		machine.IP_UEIP | machine.IP_UTIP | machine.IP_USIP

	medelegMask = 1<<machine.ExcInstrMisaligned |
		1<<machine.ExcBreakpoint |
		1<<machine.ExcEcallU |
		1<<machine.ExcInstrPageFault |
		1<<machine.ExcLoadPageFault |
		1<<machine.ExcStorePageFault |
		1<<machine.ExcInstrFault |
		1<<machine.ExcLoadFault |
		1<<machine.ExcStoreFault
)

// Delegate programs the calling hart's delegation so that everything
// in the masks above bypasses machine mode, and opens machine-mode
// visibility of external and software interrupts. The machine timer
// interrupt stays disabled until set_timer arms it. Bit-set only, so
// calling it twice is the same as calling it once.
func Delegate(csr machine.CSR) {
	csr.SetMideleg(midelegMask)
	csr.SetMedeleg(medelegMask)
	csr.SetMie(machine.IP_MEIP | machine.IP_MSIP)
}
