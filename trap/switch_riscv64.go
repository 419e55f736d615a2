//go:build riscv64

package trap

// frame is the switch state shared between Go and the assembly in
// switch_riscv64.s. mscratch points at it whenever supervisor code is
// running. Offsets are fixed; keep in sync with the assembly.
type frame struct {
	cause uint64     // 0: mcause captured by the trap vector
	ctx   *Context   // 8: context the vector marshals a0..a7/mepc into
	mregs [31]uint64 // 16: machine x1..x31 across the switch
	sregs [31]uint64 // 264: supervisor x1..x31 while in machine mode
}

// switchToSupervisor saves machine register state into fr, enters the
// supervisor at fr.ctx.Mepc via mret, and returns when the trap vector
// has bounced control back, with mcause in fr.cause.
func switchToSupervisor(fr *frame)

// installEarlyVector points mtvec at a wfi spin loop, for the window
// before the hart's switch frame exists.
func installEarlyVector()

// installMachineVector points mtvec at the frame-aware trap vector.
func installMachineVector()

// HWSwitcher drives the real privilege boundary of the calling hart.
// One per hart; never shared.
type HWSwitcher struct {
	fr frame
}

// InstallEarly parks the trap vector on the wfi spin loop. Called by
// every hart before its runtime exists.
func InstallEarly() {
	installEarlyVector()
}

// NewHWSwitcher readies the calling hart's trap vector and returns its
// switcher.
func NewHWSwitcher() *HWSwitcher {
	installMachineVector()
	return &HWSwitcher{}
}

// Switch runs the supervisor until the next machine-visible trap.
// The hardware path never completes: a supervisor OS does not return.
func (s *HWSwitcher) Switch(ctx *Context) (uint64, bool) {
	s.fr.ctx = ctx
	switchToSupervisor(&s.fr)
	return s.fr.cause, false
}

var _ Switcher = (*HWSwitcher)(nil)
