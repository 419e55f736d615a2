// Package trap runs supervisor-mode code as a resumable computation:
// the hart executes the supervisor until the hardware forces a return
// to machine mode, and that return surfaces as a typed trap kind
// instead of an implicit control-flow jump.
package trap

// Context is the supervisor register state a machine-mode handler may
// inspect and mutate between two resumptions. Only the argument
// registers and the saved program counter are modeled; everything else
// is preserved opaquely by the switch frame.
type Context struct {
	A0, A1, A2, A3, A4, A5, A6, A7 uint64

	// Mepc is the supervisor program counter to resume at.
	Mepc uint64
}

// Kind says why control returned to machine mode.
type Kind int

const (
	// SbiCall is an environment call from supervisor mode.
	SbiCall Kind = iota

	// IllegalInstruction is an instruction machine mode would have
	// to emulate.
	IllegalInstruction

	// MachineTimer means the machine timer compare fired.
	MachineTimer

	// MachineSoft means an inter-hart software interrupt arrived
	// while supervisor code was running.
	MachineSoft
)

func (k Kind) String() string {
	switch k {
	case SbiCall:
		return "sbi call"
	case IllegalInstruction:
		return "illegal instruction"
	case MachineTimer:
		return "machine timer"
	case MachineSoft:
		return "machine soft"
	}
	return "unknown"
}
