package trap

import (
	"fmt"

	"sbi-in-go/machine"
)

// Switcher transfers control to the supervisor described by ctx and
// comes back on the next machine-visible trap, reporting the raw
// mcause value. done means the supervisor will never run again.
//
// The hardware switcher is the mret/trap-vector pair in
// switch_riscv64.s; the simulation harness substitutes a scripted one.
type Switcher interface {
	Switch(ctx *Context) (mcause uint64, done bool)
}

// State of a Runtime. Running exists only while Switch is on the
// supervisor side of the privilege boundary.
type State int

const (
	NotStarted State = iota
	Running
	Suspended
	Completed
)

// Runtime is the per-hart trap/resume state machine. It is owned and
// driven by exactly one hart and holds that hart's supervisor context.
type Runtime struct {
	ctx   Context
	sw    Switcher
	state State
	hart  uint64
}

// New binds a runtime to one hart. The supervisor enters at mepc with
// the hart id in a0 and the opaque handoff value (device tree pointer)
// in a1. No side effect happens until the first Resume.
func New(sw Switcher, mepc, hartID, opaque uint64) *Runtime {
	r := &Runtime{sw: sw, state: NotStarted, hart: hartID}
	r.ctx.Mepc = mepc
	r.ctx.A0 = hartID
	r.ctx.A1 = opaque
	return r
}

// Context exposes the supervisor context for inspection and mutation
// between resumptions. Mutations take effect on the next Resume.
func (r *Runtime) Context() *Context { return &r.ctx }

// State reports the runtime's position in its lifecycle.
func (r *Runtime) State() State { return r.state }

// HartID reports the hart this runtime is bound to.
func (r *Runtime) HartID() uint64 { return r.hart }

// Resume runs the supervisor until the next machine-visible trap.
// It returns the trap kind and true, or an undefined kind and false
// once the supervisor has terminally completed. Resuming a completed
// runtime panics.
func (r *Runtime) Resume() (Kind, bool) {
	if r.state == Completed {
		panic("trap: resume of completed supervisor")
	}
	r.state = Running
	cause, done := r.sw.Switch(&r.ctx)
	if done {
		r.state = Completed
		return 0, false
	}
	r.state = Suspended
	return classify(cause, &r.ctx), true
}

// classify maps an mcause value onto the trap kinds machine mode
// handles. Anything else reaching machine mode means the privilege
// setup is broken, and the hart must not continue.
func classify(cause uint64, ctx *Context) Kind {
	if cause&machine.Interrupt != 0 {
		switch cause &^ machine.Interrupt {
		case machine.IntMTimer:
			return MachineTimer
		case machine.IntMSoft:
			return MachineSoft
		}
	} else {
		switch cause {
		case machine.ExcEcallS:
			return SbiCall
		case machine.ExcIllegal:
			return IllegalInstruction
		}
	}
	panic(fmt.Sprintf("trap: unhandled mcause %#x, mepc %#x", cause, ctx.Mepc))
}
