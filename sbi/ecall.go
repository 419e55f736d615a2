package sbi

import (
	"fmt"

	"sbi-in-go/machine"
	"sbi-in-go/trap"
)

// ecall instruction width; the saved program counter is advanced past
// it so the call is never re-executed.
const ecallWidth = 4

// HandleEcall bridges one SbiCall suspension: marshal a0..a5/a6/a7
// out of the context, dispatch, write the result into a0/a1 and step
// the program counter. a2..a7 are left untouched.
func HandleEcall(ctx *trap.Context, d Dispatcher) {
	args := [6]uint64{ctx.A0, ctx.A1, ctx.A2, ctx.A3, ctx.A4, ctx.A5}
	ret := d.Ecall(ctx.A7, ctx.A6, args)
	ctx.A0 = uint64(ret.Error)
	ctx.A1 = ret.Value
	ctx.Mepc += ecallWidth
}

// Serve drives one hart's runtime forever, handing SBI calls to the
// dispatcher and servicing the fixed set of machine-only interrupts.
// It returns only if the supervisor terminally completes.
func Serve(rt *trap.Runtime, d Dispatcher, csr machine.CSR) {
	for {
		kind, ok := rt.Resume()
		if !ok {
			return
		}
		switch kind {
		case trap.SbiCall:
			HandleEcall(rt.Context(), d)
		case trap.MachineTimer:
			// Translate into a supervisor timer interrupt and
			// keep the machine timer quiet until the next
			// set_timer call rearms it.
			csr.SetMip(machine.IP_STIP)
			csr.ClearMie(machine.IP_MTIP)
		case trap.IllegalInstruction:
			panic(fmt.Sprintf("sbi: illegal instruction at %#x, no emulation",
				rt.Context().Mepc))
		case trap.MachineSoft:
			panic("sbi: stray machine software interrupt in supervisor")
		}
	}
}
