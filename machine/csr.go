// Package machine gives the firmware access to its machine-level CSRs.
//
// The CSR interface is the per-hart view: a hardware implementation
// always operates on the calling hart's own registers, a simulated one
// carries the register file of exactly one hart.
package machine

// mip/mie interrupt bits
const (
	IP_USIP = 1 << 0  // user software
	IP_SSIP = 1 << 1  // supervisor software
	IP_MSIP = 1 << 3  // machine software
	IP_UTIP = 1 << 4  // user timer
	IP_STIP = 1 << 5  // supervisor timer
	IP_MTIP = 1 << 7  // machine timer
	IP_UEIP = 1 << 8  // user external
	IP_SEIP = 1 << 9  // supervisor external
	IP_MEIP = 1 << 11 // machine external
)

// mcause exception codes
const (
	ExcInstrMisaligned = 0
	ExcInstrFault      = 1
	ExcIllegal         = 2
	ExcBreakpoint      = 3
	ExcLoadMisaligned  = 4
	ExcLoadFault       = 5
	ExcStoreMisaligned = 6
	ExcStoreFault      = 7
	ExcEcallU          = 8
	ExcEcallS          = 9
	ExcEcallM          = 11
	ExcInstrPageFault  = 12
	ExcLoadPageFault   = 13
	ExcStorePageFault  = 15
)

// mcause interrupt codes, valid when the Interrupt bit is set
const (
	IntUSoft  = 0
	IntSSoft  = 1
	IntMSoft  = 3
	IntUTimer = 4
	IntSTimer = 5
	IntMTimer = 7
	IntUExt   = 8
	IntSExt   = 9
	IntMExt   = 11
)

// Interrupt is the top bit of mcause.
const Interrupt = uint64(1) << 63

// mstatus fields
const (
	MSTATUS_SIE = 1 << 1
	MSTATUS_MIE = 1 << 3
	MSTATUS_MPP = 3 << 11

	MPP_SUPERVISOR = 1 << 11
)

// CSR is the machine-level register file of one hart. Set and Clear
// follow csrrs/csrrc semantics: only the bits in mask are affected.
type CSR interface {
	HartID() uint64

	ReadMip() uint64
	SetMip(mask uint64)
	ClearMip(mask uint64)

	ReadMie() uint64
	SetMie(mask uint64)
	ClearMie(mask uint64)

	ReadMideleg() uint64
	SetMideleg(mask uint64)

	ReadMedeleg() uint64
	SetMedeleg(mask uint64)

	// Wfi stalls the hart until an enabled interrupt is pending.
	Wfi()
}
